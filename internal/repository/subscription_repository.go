package repository

import (
	"context"

	"github.com/databridge/dating-backend/internal/domain"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) error
	Update(ctx context.Context, sub *domain.Subscription) error
	// GetLatestByUser returns the most recent subscription by start date
	// (id as tie-break), or domain.ErrSubscriptionNotFound.
	GetLatestByUser(ctx context.Context, userID int) (*domain.Subscription, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Subscription, error)
}
