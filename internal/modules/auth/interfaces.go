package auth

import (
	"context"

	"skiresort/internal/domain"
)

// UserRepository is the persistence surface the auth service depends on.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
