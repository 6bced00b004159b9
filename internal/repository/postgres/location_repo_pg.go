package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"weathervane/internal/domain"
	"weathervane/internal/repository/ports"
)

type LocationRepository struct {
	db *sqlx.DB
}

func NewLocationRepo(db *sqlx.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, city string, latitude, longitude float64) (*domain.Location, error) {
	const query = `
        INSERT INTO locations (city, latitude, longitude)
        VALUES ($1, $2, $3)
        RETURNING id, city, latitude, longitude, created_at
    `

	row := r.db.QueryRowxContext(ctx, query, city, latitude, longitude)
	var location domain.Location
	if err := row.StructScan(&location); err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepository) FindByID(ctx context.Context, id int64) (*domain.Location, error) {
	const query = `
        SELECT id, city, latitude, longitude, created_at
        FROM locations
        WHERE id = $1
    `
	var location domain.Location
	if err := r.db.GetContext(ctx, &location, query, id); err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepository) List(ctx context.Context) ([]domain.Location, error) {
	const query = `
        SELECT id, city, latitude, longitude, created_at
        FROM locations
        ORDER BY id ASC
    `
	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]domain.Location, 0)
	for rows.Next() {
		var location domain.Location
		if err := rows.StructScan(&location); err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *LocationRepository) Delete(ctx context.Context, id int64) error {
	const query = `
        DELETE FROM locations
        WHERE id = $1
    `
	result, err := r.db.ExecContext(ctx, query, id)
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

var _ ports.LocationRepository = (*LocationRepository)(nil)
