package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"weathervane/internal/domain"
	"weathervane/internal/repository/ports"
)

type FavoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepo(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(ctx context.Context, userID, locationID int64) (*domain.Favorite, error) {
	const query = `
		INSERT INTO favorites (user_id, location_id)
		VALUES ($1, $2)
		RETURNING id, user_id, location_id, created_at
	`
	row := r.db.QueryRowxContext(ctx, query, userID, locationID)
	var favorite domain.Favorite
	if err := row.StructScan(&favorite); err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, locationID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM favorites
			WHERE user_id = $1 AND location_id = $2
		)
	`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, locationID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *FavoriteRepository) ListLocationIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	const query = `
		SELECT location_id
		FROM favorites
		WHERE user_id = $1
		ORDER BY id ASC
	`
	ids := make([]int64, 0)
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, locationID int64) error {
	const query = `
		DELETE FROM favorites
		WHERE user_id = $1 AND location_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, userID, locationID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

var _ ports.FavoriteRepository = (*FavoriteRepository)(nil)
