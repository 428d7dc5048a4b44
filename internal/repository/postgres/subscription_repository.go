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

type subscriptionRepository struct {
	db repository.Querier
}

func NewSubscriptionRepository(db *sqlx.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	query := r.db.Rebind(`
		INSERT INTO subscriptions (user_id, plan_type, start_date, end_date, status)
		VALUES (?, ?, ?, ?, ?)
		RETURNING subscription_id
	`)
	err := r.db.QueryRowxContext(ctx, query,
		sub.UserID, sub.PlanType, sub.StartDate, sub.EndDate, sub.Status,
	).Scan(&sub.ID)
	if err != nil {
		return fmt.Errorf("insert subscription for user %d: %w", sub.UserID, err)
	}
	return nil
}

func (r *subscriptionRepository) Update(ctx context.Context, sub *domain.Subscription) error {
	query := r.db.Rebind(`
		UPDATE subscriptions
		SET plan_type = ?, start_date = ?, end_date = ?, status = ?
		WHERE subscription_id = ?
	`)
	res, err := r.db.ExecContext(ctx, query,
		sub.PlanType, sub.StartDate, sub.EndDate, sub.Status, sub.ID,
	)
	if err != nil {
		return fmt.Errorf("update subscription %d: %w", sub.ID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSubscriptionNotFound
	}
	return nil
}

func (r *subscriptionRepository) GetLatestByUser(ctx context.Context, userID int) (*domain.Subscription, error) {
	var sub domain.Subscription
	query := r.db.Rebind(`
		SELECT subscription_id, user_id, plan_type, start_date, end_date, status
		FROM subscriptions
		WHERE user_id = ?
		ORDER BY start_date DESC, subscription_id DESC
		LIMIT 1
	`)
	if err := r.db.GetContext(ctx, &sub, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("get latest subscription for user %d: %w", userID, err)
	}
	return &sub, nil
}

func (r *subscriptionRepository) ListByUser(ctx context.Context, userID int) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	query := r.db.Rebind(`
		SELECT subscription_id, user_id, plan_type, start_date, end_date, status
		FROM subscriptions
		WHERE user_id = ?
		ORDER BY start_date DESC, subscription_id DESC
	`)
	if err := r.db.SelectContext(ctx, &subs, query, userID); err != nil {
		return nil, fmt.Errorf("list subscriptions for user %d: %w", userID, err)
	}
	return subs, nil
}
