package email

import "context"

// Provider delivers transactional mail. Implementations report failure
// synchronously; registration aborts when OTP delivery fails.
type Provider interface {
	// SendOTP delivers a verification code to the address. The call blocks
	// until delivery is accepted by the mail relay, the context is done,
	// or the provider's own timeout elapses.
	SendOTP(ctx context.Context, to, code string) error
}
