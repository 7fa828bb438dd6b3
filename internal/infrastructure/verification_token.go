package infrastructure

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"

	"lead-service/internal/config"
	"lead-service/internal/domain"
)

const phoneVerificationPurpose = "phone_verification"

type phoneClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// VerificationTokenService signs short-lived proofs that a phone passed OTP verification.
type VerificationTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewVerificationTokenService(cfg config.VerificationConfig) (*VerificationTokenService, error) {
	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate verification secret: %w", err)
		}
		log.Warn("VERIFICATION_TOKEN_SECRET is not set, using an ephemeral secret")
	}

	return &VerificationTokenService{
		secret: secret,
		ttl:    cfg.TTL,
		now:    time.Now,
	}, nil
}

func (s *VerificationTokenService) Issue(phone string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := phoneClaims{
		Purpose: phoneVerificationPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   phone,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate checks signature, expiry, purpose and that the token was issued for phone.
func (s *VerificationTokenService) Validate(tokenString, phone string) error {
	if tokenString == "" {
		return domain.ErrInvalidVerificationToken
	}

	claims := &phoneClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return errors.Join(domain.ErrInvalidVerificationToken, err)
	}
	if claims.Purpose != phoneVerificationPurpose {
		return domain.ErrInvalidVerificationToken
	}
	if claims.Subject != phone {
		return domain.ErrVerificationPhoneMismatch
	}
	return nil
}
