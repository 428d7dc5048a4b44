package match_test

import (
	"context"
	"testing"
	"time"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/repository/postgres"
	"github.com/databridge/dating-backend/internal/testutil"
	"github.com/databridge/dating-backend/internal/usecase/match"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase(t *testing.T) (*match.MatchUseCase, *sqlx.DB) {
	t.Helper()
	db := testutil.SetupDB(t)
	uc := match.NewMatchUseCase(
		postgres.NewMatchRepository(db),
		postgres.NewUserRepository(db),
	)
	return uc, db
}

func createMatch(t *testing.T, db *sqlx.DB, userA, userB int, at time.Time) *domain.Match {
	t.Helper()
	m := &domain.Match{User1ID: userA, User2ID: userB, MatchedAt: at}
	require.NoError(t, postgres.NewMatchRepository(db).Create(context.Background(), m))
	return m
}

func TestListMatches(t *testing.T) {
	ctx := context.Background()
	uc, db := newUseCase(t)

	alice := testutil.InsertUser(t, db, "Alice", "alice@example.com")
	bob := testutil.InsertUser(t, db, "Bob", "bob@example.com")
	carol := testutil.InsertUser(t, db, "Carol", "carol@example.com")

	base := time.Now().UTC().Truncate(time.Second)
	createMatch(t, db, alice, bob, base)
	createMatch(t, db, carol, alice, base.Add(time.Minute))

	views, err := uc.ListMatches(ctx, alice)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// newest first, each carrying the counterpart's profile
	assert.Equal(t, carol, views[0].User.ID)
	assert.Equal(t, bob, views[1].User.ID)
}

func TestListMatches_CarriesAIFields(t *testing.T) {
	ctx := context.Background()
	uc, db := newUseCase(t)

	alice := testutil.InsertUser(t, db, "Alice", "alice@example.com")
	bob := testutil.InsertUser(t, db, "Bob", "bob@example.com")

	m := createMatch(t, db, alice, bob, time.Now().UTC())
	repo := postgres.NewMatchRepository(db)
	require.NoError(t, repo.UpdateAIFields(ctx, m.ID, "You both love hiking.", []string{"Favorite trail?"}))

	views, err := uc.ListMatches(ctx, alice)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Explanation)
	assert.Equal(t, "You both love hiking.", *views[0].Explanation)
	assert.Equal(t, []string{"Favorite trail?"}, views[0].Icebreakers)
}

func TestListMatches_Empty(t *testing.T) {
	ctx := context.Background()
	uc, db := newUseCase(t)
	alice := testutil.InsertUser(t, db, "Alice", "alice@example.com")

	views, err := uc.ListMatches(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, views)
}
