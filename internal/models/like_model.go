package models

import "time"

// Like is one row per like; counts are aggregated by summing
// count grouped by post id, never updated in place.
type Like struct {
	ID        string    `db:"id" json:"id"`
	PostID    string    `db:"post_id" json:"post_id"`
	Count     int64     `db:"count" json:"count"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
