package domain

import "time"

// Subscription plan types.
const (
	PlanBasic    = "basic"
	PlanPremium  = "premium"
	PlanPlatinum = "platinum"
)

// Subscription statuses.
const (
	SubscriptionActive    = "active"
	SubscriptionExpired   = "expired"
	SubscriptionCancelled = "cancelled"
)

type Subscription struct {
	ID        int       `json:"subscription_id" db:"subscription_id"`
	UserID    int       `json:"user_id" db:"user_id"`
	PlanType  string    `json:"plan_type" db:"plan_type"`
	StartDate time.Time `json:"start_date" db:"start_date"`
	EndDate   time.Time `json:"end_date" db:"end_date"`
	Status    string    `json:"status" db:"status"`
}

func ValidPlan(p string) bool {
	return p == PlanBasic || p == PlanPremium || p == PlanPlatinum
}
