// Package account holds the account creation collaborator the form submits
// to, and its implementations.
package account

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/zjrosen/signup/internal/registration"
)

// ErrDuplicateEmail is returned when the email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// Backend names accepted in configuration.
const (
	BackendSimulated = "simulated"
	BackendSQLite    = "sqlite"
)

// Creator creates an account from a validated registration record.
type Creator interface {
	Create(ctx context.Context, in registration.Input) (Receipt, error)
}

// CreatorFunc adapts a function to Creator.
type CreatorFunc func(ctx context.Context, in registration.Input) (Receipt, error)

// Create implements Creator.
func (f CreatorFunc) Create(ctx context.Context, in registration.Input) (Receipt, error) {
	return f(ctx, in)
}

// Receipt acknowledges a created account.
type Receipt struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
