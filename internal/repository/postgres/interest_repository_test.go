package postgres_test

import (
	"context"
	"testing"

	"github.com/databridge/dating-backend/internal/repository/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterestRepository_ListByNames(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := postgres.NewInterestRepository(db)

	hiking := insertInterest(t, db, "Hiking", "Outdoors")
	insertInterest(t, db, "Jazz", "Music")

	interests, err := repo.ListByNames(ctx, []string{"Hiking", "Knitting"})
	require.NoError(t, err)
	require.Len(t, interests, 1)
	assert.Equal(t, hiking, interests[0].ID)
}

func TestInterestRepository_ReplaceForUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := postgres.NewInterestRepository(db)

	alice := insertUser(t, db, "Alice", "alice@example.com")
	hiking := insertInterest(t, db, "Hiking", "Outdoors")
	jazz := insertInterest(t, db, "Jazz", "Music")
	cooking := insertInterest(t, db, "Cooking", "Food & Drink")

	linkInterest(t, db, alice, hiking)
	linkInterest(t, db, alice, jazz)

	require.NoError(t, repo.ReplaceForUser(ctx, alice, []int{cooking}))

	ids, err := repo.ListIDsForUser(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []int{cooking}, ids)

	// replacing with an empty set clears the associations
	require.NoError(t, repo.ReplaceForUser(ctx, alice, nil))
	ids, err = repo.ListIDsForUser(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestInterestRepository_RankBySharedInterests(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := postgres.NewInterestRepository(db)

	alice := insertUser(t, db, "Alice", "alice@example.com")
	bob := insertUser(t, db, "Bob", "bob@example.com")
	carol := insertUser(t, db, "Carol", "carol@example.com")
	dave := insertUser(t, db, "Dave", "dave@example.com")

	hiking := insertInterest(t, db, "Hiking", "Outdoors")
	jazz := insertInterest(t, db, "Jazz", "Music")
	cooking := insertInterest(t, db, "Cooking", "Food & Drink")

	// alice: hiking, jazz, cooking
	linkInterest(t, db, alice, hiking)
	linkInterest(t, db, alice, jazz)
	linkInterest(t, db, alice, cooking)
	// bob shares one
	linkInterest(t, db, bob, hiking)
	// carol shares three
	linkInterest(t, db, carol, hiking)
	linkInterest(t, db, carol, jazz)
	linkInterest(t, db, carol, cooking)
	// dave shares two
	linkInterest(t, db, dave, hiking)
	linkInterest(t, db, dave, jazz)

	ranked, err := repo.RankBySharedInterests(ctx, []int{hiking, jazz, cooking}, []int{alice}, 10)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, carol, ranked[0].UserID)
	assert.Equal(t, 3, ranked[0].SharedCount)
	assert.Equal(t, dave, ranked[1].UserID)
	assert.Equal(t, 2, ranked[1].SharedCount)
	assert.Equal(t, bob, ranked[2].UserID)
	assert.Equal(t, 1, ranked[2].SharedCount)
}

func TestInterestRepository_RankExcludesUsers(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := postgres.NewInterestRepository(db)

	alice := insertUser(t, db, "Alice", "alice@example.com")
	bob := insertUser(t, db, "Bob", "bob@example.com")
	carol := insertUser(t, db, "Carol", "carol@example.com")

	hiking := insertInterest(t, db, "Hiking", "Outdoors")
	linkInterest(t, db, alice, hiking)
	linkInterest(t, db, bob, hiking)
	linkInterest(t, db, carol, hiking)

	ranked, err := repo.RankBySharedInterests(ctx, []int{hiking}, []int{alice, bob}, 10)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, carol, ranked[0].UserID)
}

func TestInterestRepository_RankTieBreakIsDeterministic(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := postgres.NewInterestRepository(db)

	alice := insertUser(t, db, "Alice", "alice@example.com")
	bob := insertUser(t, db, "Bob", "bob@example.com")
	carol := insertUser(t, db, "Carol", "carol@example.com")

	hiking := insertInterest(t, db, "Hiking", "Outdoors")
	linkInterest(t, db, alice, hiking)
	linkInterest(t, db, bob, hiking)
	linkInterest(t, db, carol, hiking)

	ranked, err := repo.RankBySharedInterests(ctx, []int{hiking}, []int{alice}, 10)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	// equal shared counts fall back to ascending user id
	assert.Equal(t, bob, ranked[0].UserID)
	assert.Equal(t, carol, ranked[1].UserID)
}
