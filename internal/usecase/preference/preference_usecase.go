package preference

import (
	"context"
	"fmt"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/repository"
)

type PreferenceUseCase struct {
	prefRepo repository.PreferenceRepository
	userRepo repository.UserRepository
}

func NewPreferenceUseCase(prefRepo repository.PreferenceRepository, userRepo repository.UserRepository) *PreferenceUseCase {
	return &PreferenceUseCase{prefRepo: prefRepo, userRepo: userRepo}
}

// UpsertRequest carries the partner filters to store for the current user.
type UpsertRequest struct {
	PreferredGender  *string `json:"preferred_gender" binding:"omitempty,gender"`
	AgeMin           *int    `json:"age_min" binding:"omitempty,gte=18,lte=120"`
	AgeMax           *int    `json:"age_max" binding:"omitempty,gte=18,lte=120,gtefield=AgeMin"`
	LocationRadiusKm *int    `json:"location_radius_km" binding:"omitempty,gte=1,lte=20000"`
}

// Upsert creates or overwrites the user's preference row.
func (uc *PreferenceUseCase) Upsert(ctx context.Context, userID int, req *UpsertRequest) (*domain.Preference, error) {
	exists, err := uc.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	pref := &domain.Preference{
		UserID:           userID,
		PreferredGender:  req.PreferredGender,
		AgeMin:           req.AgeMin,
		AgeMax:           req.AgeMax,
		LocationRadiusKm: req.LocationRadiusKm,
	}
	if err := uc.prefRepo.Upsert(ctx, pref); err != nil {
		return nil, fmt.Errorf("upsert preference for user %d: %w", userID, err)
	}
	return pref, nil
}

// Get returns the user's stored preference, or ErrPreferenceNotFound.
func (uc *PreferenceUseCase) Get(ctx context.Context, userID int) (*domain.Preference, error) {
	return uc.prefRepo.GetByUser(ctx, userID)
}
