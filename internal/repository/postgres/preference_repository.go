package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type preferenceRepository struct {
	db repository.Querier
}

func NewPreferenceRepository(db *sqlx.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetByUser(ctx context.Context, userID int) (*domain.Preference, error) {
	var pref domain.Preference
	query := r.db.Rebind(`
		SELECT preference_id, user_id, preferred_gender, age_min, age_max, location_radius_km
		FROM preferences WHERE user_id = ?
	`)
	if err := r.db.GetContext(ctx, &pref, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("get preference for user %d: %w", userID, err)
	}
	return &pref, nil
}

func (r *preferenceRepository) Upsert(ctx context.Context, pref *domain.Preference) error {
	query := r.db.Rebind(`
		INSERT INTO preferences (user_id, preferred_gender, age_min, age_max, location_radius_km)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			preferred_gender = excluded.preferred_gender,
			age_min = excluded.age_min,
			age_max = excluded.age_max,
			location_radius_km = excluded.location_radius_km
		RETURNING preference_id
	`)
	err := r.db.QueryRowxContext(ctx, query,
		pref.UserID, pref.PreferredGender, pref.AgeMin, pref.AgeMax, pref.LocationRadiusKm,
	).Scan(&pref.ID)
	if err != nil {
		return fmt.Errorf("upsert preference for user %d: %w", pref.UserID, err)
	}
	return nil
}
