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

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := postgres.NewUserRepository(db)

	name := "Alice"
	user := &domain.User{
		Name:         &name,
		Email:        "alice@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := postgres.NewUserRepository(db)

	name := "Alice"
	first := &domain.User{Name: &name, Email: "alice@example.com", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, first))

	dup := &domain.User{Name: &name, Email: "alice@example.com", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserRepository_GetProfilesByIDs(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := postgres.NewUserRepository(db)

	alice := insertUser(t, db, "Alice", "alice@example.com")
	bob := insertUser(t, db, "Bob", "bob@example.com")

	hiking := insertInterest(t, db, "Hiking", "Outdoors")
	jazz := insertInterest(t, db, "Jazz", "Music")
	linkInterest(t, db, alice, hiking)
	linkInterest(t, db, alice, jazz)

	_, err := db.Exec(
		`INSERT INTO profile_photos (user_id, photo_url, is_primary, uploaded_at) VALUES (?, ?, ?, ?)`,
		alice, "/static/user_photos/1/a.jpg", true, time.Now().UTC(),
	)
	require.NoError(t, err)

	profiles, err := repo.GetProfilesByIDs(ctx, []int{alice, bob, 9999})
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	aliceProfile := profiles[alice]
	require.NotNil(t, aliceProfile)
	assert.Len(t, aliceProfile.Interests, 2)
	require.Len(t, aliceProfile.Photos, 1)
	assert.True(t, aliceProfile.Photos[0].IsPrimary)

	bobProfile := profiles[bob]
	require.NotNil(t, bobProfile)
	assert.Empty(t, bobProfile.Interests)
	assert.Empty(t, bobProfile.Photos)

	// missing ids are simply absent
	_, ok := profiles[9999]
	assert.False(t, ok)
}

func TestUserRepository_Update(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := postgres.NewUserRepository(db)

	id := insertUser(t, db, "Alice", "alice@example.com")

	user, err := repo.GetByID(ctx, id)
	require.NoError(t, err)

	bio := "hill walker"
	user.Bio = &bio
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.Bio)
	assert.Equal(t, bio, *got.Bio)
}

func TestUserRepository_ListNewestIDs(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := postgres.NewUserRepository(db)

	var ids []int
	base := time.Now().UTC().Truncate(time.Second)
	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		var id int
		err := db.QueryRowx(
			`INSERT INTO users (name, email, password_hash, created_at) VALUES (?, ?, 'x', ?) RETURNING user_id`,
			"User", email, base.Add(time.Duration(i)*time.Minute),
		).Scan(&id)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	got, err := repo.ListNewestIDs(ctx, []int{ids[2]}, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{ids[1], ids[0]}, got)
}
