package domain

import "time"

type Location struct {
	ID        int64     `db:"id" json:"id"`
	City      string    `db:"city" json:"city"`
	Latitude  float64   `db:"latitude" json:"latitude"`
	Longitude float64   `db:"longitude" json:"longitude"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
