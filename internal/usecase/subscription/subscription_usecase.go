package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/logger"
	"github.com/databridge/dating-backend/internal/repository"
)

// Plan durations. Basic never expires in practice, so it gets a
// far-future end date instead of a separate nullable column.
var planDurations = map[string]time.Duration{
	domain.PlanPremium:  30 * 24 * time.Hour,
	domain.PlanPlatinum: 90 * 24 * time.Hour,
	domain.PlanBasic:    100 * 365 * 24 * time.Hour,
}

type SubscriptionUseCase struct {
	subRepo  repository.SubscriptionRepository
	userRepo repository.UserRepository
}

func NewSubscriptionUseCase(subRepo repository.SubscriptionRepository, userRepo repository.UserRepository) *SubscriptionUseCase {
	return &SubscriptionUseCase{subRepo: subRepo, userRepo: userRepo}
}

// UpgradeRequest selects the plan to switch the user onto.
type UpgradeRequest struct {
	Plan string `json:"plan" binding:"required,oneof=basic premium platinum"`
}

// Upgrade switches the user onto the requested plan: the most recent
// subscription row is rewritten in place, or a first row is created for a
// user with no history. Returns the user's full profile, matching what
// clients render after an upgrade.
func (uc *SubscriptionUseCase) Upgrade(ctx context.Context, userID int, req *UpgradeRequest) (*domain.Profile, error) {
	duration, ok := planDurations[req.Plan]
	if !ok {
		return nil, domain.ErrUnknownPlan
	}

	profile, err := uc.userRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	endDate := now.Add(duration)

	latest, err := uc.subRepo.GetLatestByUser(ctx, userID)
	switch {
	case err == nil:
		latest.PlanType = req.Plan
		latest.Status = domain.SubscriptionActive
		latest.StartDate = now
		latest.EndDate = endDate
		if err := uc.subRepo.Update(ctx, latest); err != nil {
			return nil, fmt.Errorf("update subscription: %w", err)
		}
	case errors.Is(err, domain.ErrSubscriptionNotFound):
		sub := &domain.Subscription{
			UserID:    userID,
			PlanType:  req.Plan,
			StartDate: now,
			EndDate:   endDate,
			Status:    domain.SubscriptionActive,
		}
		if err := uc.subRepo.Create(ctx, sub); err != nil {
			return nil, fmt.Errorf("create subscription: %w", err)
		}
	default:
		return nil, fmt.Errorf("look up subscription: %w", err)
	}

	logger.Info("subscription upgraded", "user_id", userID, "plan", req.Plan)
	return profile, nil
}

// Current returns the user's most recent subscription.
func (uc *SubscriptionUseCase) Current(ctx context.Context, userID int) (*domain.Subscription, error) {
	return uc.subRepo.GetLatestByUser(ctx, userID)
}
