package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"weathervane/internal/repository/ports"
)

var (
	ErrFavoriteExists   = errors.New("favorite already exists")
	ErrFavoriteNotFound = errors.New("favorite does not exist")
	ErrNoFavorites      = errors.New("favorites list is empty")
)

type FavoriteService struct {
	favorites ports.FavoriteRepository
	log       *zap.SugaredLogger
}

func NewFavoriteService(favorites ports.FavoriteRepository, log *zap.SugaredLogger) *FavoriteService {
	return &FavoriteService{favorites: favorites, log: log}
}

func (s *FavoriteService) Add(ctx context.Context, userID, locationID int64) error {
	// Fast path only; the unique constraint is the authoritative signal under
	// concurrent adds.
	exists, err := s.favorites.Exists(ctx, userID, locationID)
	if err != nil {
		return err
	}
	if exists {
		return ErrFavoriteExists
	}

	favorite, err := s.favorites.Add(ctx, userID, locationID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrFavoriteExists
		}
		return err
	}
	s.log.Infow("favorite added", "id", favorite.ID, "user_id", favorite.UserID, "location_id", favorite.LocationID)
	return nil
}

// ListByUser returns the location IDs the user has favorited, in insertion
// order. Zero favorites is an error by contract, not an empty success.
func (s *FavoriteService) ListByUser(ctx context.Context, userID int64) ([]int64, error) {
	ids, err := s.favorites.ListLocationIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrNoFavorites
	}
	return ids, nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID, locationID int64) error {
	if err := s.favorites.Remove(ctx, userID, locationID); err != nil {
		if isNotFound(err) {
			return ErrFavoriteNotFound
		}
		return err
	}
	s.log.Infow("favorite removed", "user_id", userID, "location_id", locationID)
	return nil
}
