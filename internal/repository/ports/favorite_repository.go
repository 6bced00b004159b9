package ports

import (
	"context"

	"weathervane/internal/domain"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID, locationID int64) (*domain.Favorite, error)
	Exists(ctx context.Context, userID, locationID int64) (bool, error)
	ListLocationIDsByUser(ctx context.Context, userID int64) ([]int64, error)
	Remove(ctx context.Context, userID, locationID int64) error
}
