package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/repository/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRepository_CreateNormalizesPair(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := postgres.NewMatchRepository(db)

	alice := insertUser(t, db, "Alice", "alice@example.com")
	bob := insertUser(t, db, "Bob", "bob@example.com")

	// insert with the larger id first
	m := &domain.Match{User1ID: bob, User2ID: alice, MatchedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, m))
	require.NotZero(t, m.ID)
	assert.Less(t, m.User1ID, m.User2ID)

	got, err := repo.GetByUsers(ctx, bob, alice)
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)
}

func TestMatchRepository_CreateDuplicatePair(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := postgres.NewMatchRepository(db)

	alice := insertUser(t, db, "Alice", "alice@example.com")
	bob := insertUser(t, db, "Bob", "bob@example.com")

	require.NoError(t, repo.Create(ctx, &domain.Match{User1ID: alice, User2ID: bob, MatchedAt: time.Now().UTC()}))

	// same pair from either direction hits the uniqueness constraint
	err := repo.Create(ctx, &domain.Match{User1ID: bob, User2ID: alice, MatchedAt: time.Now().UTC()})
	assert.ErrorIs(t, err, domain.ErrMatchAlreadyExists)
}

func TestMatchRepository_GetByUsersNotFound(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := postgres.NewMatchRepository(db)

	_, err := repo.GetByUsers(ctx, 1, 2)
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}

func TestMatchRepository_ListMatchedUserIDs(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := postgres.NewMatchRepository(db)

	alice := insertUser(t, db, "Alice", "alice@example.com")
	bob := insertUser(t, db, "Bob", "bob@example.com")
	carol := insertUser(t, db, "Carol", "carol@example.com")

	require.NoError(t, repo.Create(ctx, &domain.Match{User1ID: alice, User2ID: bob, MatchedAt: time.Now().UTC()}))
	require.NoError(t, repo.Create(ctx, &domain.Match{User1ID: carol, User2ID: alice, MatchedAt: time.Now().UTC()}))

	ids, err := repo.ListMatchedUserIDs(ctx, alice)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{bob, carol}, ids)

	ids, err = repo.ListMatchedUserIDs(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, []int{alice}, ids)
}

func TestMatchRepository_ListByUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := postgres.NewMatchRepository(db)

	alice := insertUser(t, db, "Alice", "alice@example.com")
	bob := insertUser(t, db, "Bob", "bob@example.com")
	carol := insertUser(t, db, "Carol", "carol@example.com")

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Create(ctx, &domain.Match{User1ID: alice, User2ID: bob, MatchedAt: base}))
	require.NoError(t, repo.Create(ctx, &domain.Match{User1ID: alice, User2ID: carol, MatchedAt: base.Add(time.Minute)}))

	matches, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	// newest first
	assert.Equal(t, carol, matches[0].OtherUserID(alice))
	assert.Equal(t, bob, matches[1].OtherUserID(alice))
}

func TestMatchRepository_UpdateAIFieldsRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := postgres.NewMatchRepository(db)

	alice := insertUser(t, db, "Alice", "alice@example.com")
	bob := insertUser(t, db, "Bob", "bob@example.com")

	m := &domain.Match{User1ID: alice, User2ID: bob, MatchedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, m))

	icebreakers := []string{"You both hike!", "Ask about jazz"}
	require.NoError(t, repo.UpdateAIFields(ctx, m.ID, "You share three interests.", icebreakers))

	matches, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.NotNil(t, matches[0].Explanation)
	assert.Equal(t, "You share three interests.", *matches[0].Explanation)
	assert.Equal(t, icebreakers, []string(matches[0].Icebreakers))

	got, err := repo.GetByUsers(ctx, alice, bob)
	require.NoError(t, err)
	assert.Equal(t, icebreakers, []string(got.Icebreakers))

	err = repo.UpdateAIFields(ctx, 9999, "x", nil)
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}
