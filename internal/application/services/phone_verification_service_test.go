package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lead-service/internal/application/command"
	"lead-service/internal/application/validation"
	"lead-service/internal/domain"
)

func newPhoneVerificationService(otp *fakeOTP, sms *fakeSMS, allow bool) (*PhoneVerificationService, *fakeTokens) {
	tokens := &fakeTokens{}
	svc := NewPhoneVerificationService(otp, sms, tokens, fakeLimiter{allow: allow}, validation.New())
	return svc.(*PhoneVerificationService), tokens
}

func TestRequestOTPSendsSMS(t *testing.T) {
	otp, sms := &fakeOTP{}, &fakeSMS{}
	svc, _ := newPhoneVerificationService(otp, sms, true)

	result, err := svc.RequestOTP(context.Background(), &command.RequestOTPCommand{Phone: "998901234567"})
	require.NoError(t, err)

	assert.Equal(t, "998901234567", result.Phone)
	assert.Equal(t, []string{"Your verification code is 123456. Valid for 4 minutes."}, sms.sent)
}

func TestRequestOTPInvalidPhone(t *testing.T) {
	otp := &fakeOTP{}
	svc, _ := newPhoneVerificationService(otp, &fakeSMS{}, true)

	_, err := svc.RequestOTP(context.Background(), &command.RequestOTPCommand{Phone: "+1 555"})

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("phone"))
	assert.Empty(t, otp.codes)
}

func TestRequestOTPRateLimited(t *testing.T) {
	otp := &fakeOTP{}
	svc, _ := newPhoneVerificationService(otp, &fakeSMS{}, false)

	_, err := svc.RequestOTP(context.Background(), &command.RequestOTPCommand{Phone: "998901234567"})

	assert.ErrorIs(t, err, domain.ErrOTPRateLimited)
	assert.Empty(t, otp.codes)
}

func TestRequestOTPSMSFailureInvalidatesCode(t *testing.T) {
	otp := &fakeOTP{}
	svc, _ := newPhoneVerificationService(otp, &fakeSMS{err: errors.New("gateway down")}, true)

	_, err := svc.RequestOTP(context.Background(), &command.RequestOTPCommand{Phone: "998901234567"})

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, domain.ValidationErrors{{Field: "sms", Message: "Failed to send SMS"}}, verrs)
	assert.Equal(t, []string{"998901234567"}, otp.invalidated)
	assert.Empty(t, otp.codes)
}

func TestRequestOTPCacheFailurePropagates(t *testing.T) {
	cacheErr := errors.New("redis unavailable")
	svc, _ := newPhoneVerificationService(&fakeOTP{generateErr: cacheErr}, &fakeSMS{}, true)

	_, err := svc.RequestOTP(context.Background(), &command.RequestOTPCommand{Phone: "998901234567"})
	assert.ErrorIs(t, err, cacheErr)
}

func TestVerifyOTP(t *testing.T) {
	otp := &fakeOTP{}
	svc, tokens := newPhoneVerificationService(otp, &fakeSMS{}, true)
	ctx := context.Background()

	_, err := svc.RequestOTP(ctx, &command.RequestOTPCommand{Phone: "998901234567"})
	require.NoError(t, err)

	_, err = svc.VerifyOTP(ctx, &command.VerifyOTPCommand{Phone: "998901234567", OTPCode: "000000"})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, domain.ValidationErrors{{Field: "otp_code", Message: "Invalid or expired OTP code"}}, verrs)

	result, err := svc.VerifyOTP(ctx, &command.VerifyOTPCommand{Phone: "998901234567", OTPCode: "123456"})
	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.NoError(t, tokens.Validate(result.VerificationToken, "998901234567"))

	_, err = svc.VerifyOTP(ctx, &command.VerifyOTPCommand{Phone: "998901234567", OTPCode: "123456"})
	require.ErrorAs(t, err, &verrs)
}

func TestVerifyOTPMalformedCode(t *testing.T) {
	svc, _ := newPhoneVerificationService(&fakeOTP{}, &fakeSMS{}, true)

	_, err := svc.VerifyOTP(context.Background(), &command.VerifyOTPCommand{Phone: "998901234567", OTPCode: "12ab"})

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("otp_code"))
}
