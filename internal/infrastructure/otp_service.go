package infrastructure

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"lead-service/internal/config"
	"lead-service/internal/infrastructure/cache"
)

const otpKeyPrefix = "phone_verification_otp_"

// OTPService issues one-time numeric codes bound to a phone number.
type OTPService struct {
	store    cache.Store
	ttl      time.Duration
	length   int
	generate func(length int) (string, error)
}

func NewOTPService(store cache.Store, cfg config.OTPConfig) *OTPService {
	return &OTPService{
		store:    store,
		ttl:      cfg.TTL,
		length:   cfg.Length,
		generate: randomDigits,
	}
}

// Generate stores a fresh code for phone, replacing any previous one.
func (o *OTPService) Generate(ctx context.Context, phone string) (string, error) {
	code, err := o.generate(o.length)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}

	if err := o.store.Set(ctx, otpKey(phone), code, o.ttl); err != nil {
		return "", err
	}
	return code, nil
}

// Verify consumes the stored code when it equals code. A matching code can be used once.
func (o *OTPService) Verify(ctx context.Context, phone, code string) (bool, error) {
	if code == "" {
		return false, nil
	}
	return o.store.CompareAndDelete(ctx, otpKey(phone), code)
}

// Invalidate drops whatever code is pending for phone.
func (o *OTPService) Invalidate(ctx context.Context, phone string) error {
	return o.store.Del(ctx, otpKey(phone))
}

func (o *OTPService) TTL() time.Duration {
	return o.ttl
}

func otpKey(phone string) string {
	return otpKeyPrefix + phone
}

func randomDigits(length int) (string, error) {
	otp := make([]byte, length)
	for i := range otp {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		otp[i] = byte(n.Int64()) + '0'
	}
	return string(otp), nil
}
