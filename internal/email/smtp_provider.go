package email

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// Config holds the SMTP settings the provider needs.
type Config struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromEmail   string
	FromName    string
	SendTimeout time.Duration
}

// SMTPProvider sends mail through a plain SMTP relay via gomail.
type SMTPProvider struct {
	cfg Config
}

func NewSMTPProvider(cfg Config) (*SMTPProvider, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid smtp port: %d", cfg.Port)
	}
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("from address is required")
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 10 * time.Second
	}
	return &SMTPProvider{cfg: cfg}, nil
}

// SendOTP delivers the verification code. gomail has no context support,
// so the dial-and-send runs in a goroutine and the caller is released on
// timeout; a late success is logged as lost by the caller, not retried.
func (p *SMTPProvider) SendOTP(ctx context.Context, to, code string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.FromEmail, p.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Verify Your Email - Mini Vutto")
	m.SetBody("text/html", otpBody(code))

	d := gomail.NewDialer(p.cfg.Host, p.cfg.Port, p.cfg.Username, p.cfg.Password)

	ctx, cancel := context.WithTimeout(ctx, p.cfg.SendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send otp email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("send otp email: %w", ctx.Err())
	}
}

func otpBody(code string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="text-align: center;">Mini Vutto</h1>
  <p style="text-align: center; color: #666;">Used Bike Listings Platform</p>
  <h2 style="text-align: center;">Email Verification Required</h2>
  <p style="text-align: center;">Please use the following verification code to complete your registration:</p>
  <div style="background-color: #007bff; color: white; padding: 20px; border-radius: 8px; text-align: center;">
    <h1 style="font-size: 36px; margin: 0; letter-spacing: 8px;">%s</h1>
  </div>
  <p style="text-align: center; color: #666;">This code will expire in 10 minutes.</p>
  <p style="text-align: center; color: #999; font-size: 12px;">If you didn't request this verification, please ignore this email.</p>
</div>`, code)
}
