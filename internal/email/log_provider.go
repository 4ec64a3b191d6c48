package email

import (
	"context"

	"minivutto_backend/internal/logger"
)

// LogProvider writes the OTP to the application log instead of sending
// mail. It backs development setups that have no SMTP relay configured.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) SendOTP(ctx context.Context, to, code string) error {
	logger.CtxWarn(ctx, "SMTP is not configured, logging OTP instead of sending",
		"to", to, "otp", code)
	return nil
}
