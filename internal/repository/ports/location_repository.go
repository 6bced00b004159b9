package ports

import (
	"context"

	"weathervane/internal/domain"
)

type LocationRepository interface {
	Create(ctx context.Context, city string, latitude, longitude float64) (*domain.Location, error)
	FindByID(ctx context.Context, id int64) (*domain.Location, error)
	List(ctx context.Context) ([]domain.Location, error)
	Delete(ctx context.Context, id int64) error
}
