package command

import "time"

type VerifyOTPCommand struct {
	Phone   string `json:"phone" form:"phone" validate:"required,uzphone"`
	OTPCode string `json:"otp_code" form:"otp_code" validate:"required,len=6,numeric"`
}

type VerifyOTPCommandResult struct {
	Message           string    `json:"message"`
	Phone             string    `json:"phone"`
	Verified          bool      `json:"verified"`
	VerificationToken string    `json:"verification_token"`
	ExpiresAt         time.Time `json:"expires_at"`
}
