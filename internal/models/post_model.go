package models

import "time"

type Post struct {
	ID        string    `db:"id" json:"id"`
	Caption   string    `db:"caption" json:"caption"`
	ImageKey  string    `db:"image_key" json:"image_key"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
