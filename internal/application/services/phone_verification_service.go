package services

import (
	"context"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"lead-service/internal/application/command"
	"lead-service/internal/application/interfaces"
	"lead-service/internal/application/validation"
	"lead-service/internal/domain"
)

const otpMessageTemplate = "Your verification code is %s. Valid for %d minutes."

type PhoneVerificationService struct {
	otpService  interfaces.OTPService
	smsSender   interfaces.SMSSender
	tokens      interfaces.VerificationTokens
	rateLimiter interfaces.RateLimiter
	validator   *validation.Validator
}

func NewPhoneVerificationService(
	otpService interfaces.OTPService,
	smsSender interfaces.SMSSender,
	tokens interfaces.VerificationTokens,
	rateLimiter interfaces.RateLimiter,
	validator *validation.Validator,
) interfaces.PhoneVerificationService {
	return &PhoneVerificationService{
		otpService:  otpService,
		smsSender:   smsSender,
		tokens:      tokens,
		rateLimiter: rateLimiter,
		validator:   validator,
	}
}

func (s *PhoneVerificationService) RequestOTP(ctx context.Context, requestCommand *command.RequestOTPCommand) (*command.RequestOTPCommandResult, error) {
	if errs := s.validator.Struct(requestCommand); len(errs) > 0 {
		return nil, errs
	}

	// Apply rate limiting for OTP generation
	if !s.rateLimiter.Allow(requestCommand.Phone) {
		return nil, domain.ErrOTPRateLimited
	}

	code, err := s.otpService.Generate(ctx, requestCommand.Phone)
	if err != nil {
		return nil, err
	}

	minutes := int(math.Ceil(s.otpService.TTL().Minutes()))
	text := fmt.Sprintf(otpMessageTemplate, code, minutes)
	if err := s.smsSender.Send(ctx, requestCommand.Phone, text); err != nil {
		log.WithError(err).WithField("phone", requestCommand.Phone).Warn("failed to send otp sms")

		// A code the user never received must not stay valid
		if delErr := s.otpService.Invalidate(ctx, requestCommand.Phone); delErr != nil {
			log.WithError(delErr).WithField("phone", requestCommand.Phone).Error("failed to invalidate unsent otp")
		}
		return nil, domain.ValidationErrors{{Field: "sms", Message: "Failed to send SMS"}}
	}

	return &command.RequestOTPCommandResult{
		Message: "OTP sent successfully",
		Phone:   requestCommand.Phone,
	}, nil
}

func (s *PhoneVerificationService) VerifyOTP(ctx context.Context, verifyCommand *command.VerifyOTPCommand) (*command.VerifyOTPCommandResult, error) {
	if errs := s.validator.Struct(verifyCommand); len(errs) > 0 {
		return nil, errs
	}

	ok, err := s.otpService.Verify(ctx, verifyCommand.Phone, verifyCommand.OTPCode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ValidationErrors{{Field: "otp_code", Message: "Invalid or expired OTP code"}}
	}

	token, expiresAt, err := s.tokens.Issue(verifyCommand.Phone)
	if err != nil {
		return nil, fmt.Errorf("issue verification token: %w", err)
	}

	return &command.VerifyOTPCommandResult{
		Message:           "Phone number verified successfully",
		Phone:             verifyCommand.Phone,
		Verified:          true,
		VerificationToken: token,
		ExpiresAt:         expiresAt,
	}, nil
}
