package domain

import "time"

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Salt         string    `db:"salt" json:"-"`
	PasswordHash string    `db:"password_hash" json:"-"`
	AuthHash     []byte    `db:"auth_hash" json:"-"`
	AuthSalt     []byte    `db:"auth_salt" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
