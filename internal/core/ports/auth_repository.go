package ports

import (
	"context"

	"github.com/mercadinho/catalog-api/internal/core/domain"
)

// AuthRepository defines the interface for user persistence.
type AuthRepository interface {
	// FindByUsername returns domain.ErrNotFound when no user matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create persists a new user and returns it with the store-assigned id.
	// Returns domain.ErrUserExists when the username is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
