package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"weathervane/internal/domain"
	"weathervane/internal/repository/ports"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, username, salt, passwordHash string, authHash, authSalt []byte) (*domain.User, error) {
	const query = `
        INSERT INTO users (username, salt, password_hash, auth_hash, auth_salt)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, username, salt, password_hash, auth_hash, auth_salt, created_at
    `

	row := r.db.QueryRowxContext(ctx, query, username, salt, passwordHash, authHash, authSalt)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
        SELECT id, username, salt, password_hash, auth_hash, auth_salt, created_at
        FROM users
        WHERE username = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, username, salt, passwordHash string, authHash, authSalt []byte) error {
	const query = `
        UPDATE users
        SET salt = $2,
            password_hash = $3,
            auth_hash = $4,
            auth_salt = $5
        WHERE username = $1
    `
	result, err := r.db.ExecContext(ctx, query, username, salt, passwordHash, authHash, authSalt)
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

func (r *UserRepository) Delete(ctx context.Context, username string) error {
	const query = `
        DELETE FROM users
        WHERE username = $1
    `
	result, err := r.db.ExecContext(ctx, query, username)
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

var _ ports.UserRepository = (*UserRepository)(nil)
