package auth

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/carbonkhet/carbonkhet/services/auth NotificationGW

// NotificationGW delivers OTP codes and welcome messages to an email
// address. Both calls are best-effort: a false return is logged by the
// caller but never fails the operation that triggered it.
type NotificationGW interface {
	SendOTP(ctx context.Context, email, code string) bool
	SendWelcome(ctx context.Context, email, name string, estimatedIncome int64) bool
}
