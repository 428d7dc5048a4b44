package domain

import "time"

// Like is a directed edge: liker liked liked. At most one row exists per
// ordered pair (composite primary key); self-likes are rejected before
// storage is touched.
type Like struct {
	LikerID int       `json:"liker_id" db:"liker_id"`
	LikedID int       `json:"liked_id" db:"liked_id"`
	LikedAt time.Time `json:"liked_at" db:"liked_at"`
}
