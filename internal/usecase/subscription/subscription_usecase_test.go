package subscription_test

import (
	"context"
	"testing"
	"time"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/repository/postgres"
	"github.com/databridge/dating-backend/internal/testutil"
	"github.com/databridge/dating-backend/internal/usecase/subscription"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase(t *testing.T) (*subscription.SubscriptionUseCase, *sqlx.DB) {
	t.Helper()
	db := testutil.SetupDB(t)
	uc := subscription.NewSubscriptionUseCase(
		postgres.NewSubscriptionRepository(db),
		postgres.NewUserRepository(db),
	)
	return uc, db
}

func TestUpgrade_CreatesFirstSubscription(t *testing.T) {
	ctx := context.Background()
	uc, db := newUseCase(t)
	alice := testutil.InsertUser(t, db, "Alice", "alice@example.com")

	profile, err := uc.Upgrade(ctx, alice, &subscription.UpgradeRequest{Plan: domain.PlanPremium})
	require.NoError(t, err)
	assert.Equal(t, alice, profile.ID)

	current, err := uc.Current(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanPremium, current.PlanType)
	assert.Equal(t, domain.SubscriptionActive, current.Status)
	assert.WithinDuration(t, current.StartDate.Add(30*24*time.Hour), current.EndDate, time.Minute)
}

func TestUpgrade_RewritesLatestInPlace(t *testing.T) {
	ctx := context.Background()
	uc, db := newUseCase(t)
	alice := testutil.InsertUser(t, db, "Alice", "alice@example.com")

	_, err := uc.Upgrade(ctx, alice, &subscription.UpgradeRequest{Plan: domain.PlanPremium})
	require.NoError(t, err)
	_, err = uc.Upgrade(ctx, alice, &subscription.UpgradeRequest{Plan: domain.PlanPlatinum})
	require.NoError(t, err)

	// still a single row, now carrying the new plan
	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM subscriptions WHERE user_id = ?", alice))
	assert.Equal(t, 1, count)

	current, err := uc.Current(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanPlatinum, current.PlanType)
	assert.WithinDuration(t, current.StartDate.Add(90*24*time.Hour), current.EndDate, time.Minute)
}

func TestUpgrade_BasicGetsFarFutureEnd(t *testing.T) {
	ctx := context.Background()
	uc, db := newUseCase(t)
	alice := testutil.InsertUser(t, db, "Alice", "alice@example.com")

	_, err := uc.Upgrade(ctx, alice, &subscription.UpgradeRequest{Plan: domain.PlanBasic})
	require.NoError(t, err)

	current, err := uc.Current(ctx, alice)
	require.NoError(t, err)
	assert.True(t, current.EndDate.After(time.Now().AddDate(99, 0, 0)))
}

func TestUpgrade_UserMissing(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)

	_, err := uc.Upgrade(ctx, 9999, &subscription.UpgradeRequest{Plan: domain.PlanPremium})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCurrent_NoHistory(t *testing.T) {
	ctx := context.Background()
	uc, db := newUseCase(t)
	alice := testutil.InsertUser(t, db, "Alice", "alice@example.com")

	_, err := uc.Current(ctx, alice)
	assert.ErrorIs(t, err, domain.ErrSubscriptionNotFound)
}
