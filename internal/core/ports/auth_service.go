package ports

import (
	"context"

	"github.com/mercadinho/catalog-api/internal/core/domain"
)

// SignupInput carries the fields accepted on registration.
type SignupInput struct {
	Username string
	Email    string
	Password string
	Role     string // empty defaults to domain.RoleUser
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	// Login returns a signed token. Unknown username and wrong password
	// both surface as domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginLimiter throttles repeated failed logins per username.
type LoginLimiter interface {
	TooMany(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
