package repository

import (
	"context"

	"github.com/databridge/dating-backend/internal/domain"
)

type PreferenceRepository interface {
	GetByUser(ctx context.Context, userID int) (*domain.Preference, error)
	// Upsert creates the user's preference row or overwrites the existing one.
	Upsert(ctx context.Context, pref *domain.Preference) error
}
