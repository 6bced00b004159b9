package ports

import (
	"context"

	"weathervane/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, username, salt, passwordHash string, authHash, authSalt []byte) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdatePassword(ctx context.Context, username, salt, passwordHash string, authHash, authSalt []byte) error
	Delete(ctx context.Context, username string) error
}
