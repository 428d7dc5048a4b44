package domain

import "time"

// ProfilePhoto is a photo owned by a user. At most one photo per user is
// primary; list ordering is primary first, then upload time.
type ProfilePhoto struct {
	ID         int       `json:"photo_id" db:"photo_id"`
	UserID     int       `json:"user_id" db:"user_id"`
	URL        string    `json:"photo_url" db:"photo_url"`
	IsPrimary  bool      `json:"is_primary" db:"is_primary"`
	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at"`
}
