package photo_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/repository/postgres"
	"github.com/databridge/dating-backend/internal/testutil"
	"github.com/databridge/dating-backend/internal/usecase/photo"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage keeps saved files in memory and records removals.
type fakeStorage struct {
	files   map[string][]byte
	removed []string
	nextID  int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: map[string][]byte{}}
}

func (s *fakeStorage) Save(userID int, ext string, src io.Reader) (string, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	s.nextID++
	url := fmt.Sprintf("/static/user_photos/%d/%d.%s", userID, s.nextID, ext)
	s.files[url] = data
	return url, nil
}

func (s *fakeStorage) Remove(photoURL string) error {
	delete(s.files, photoURL)
	s.removed = append(s.removed, photoURL)
	return nil
}

func newUseCase(t *testing.T) (*photo.PhotoUseCase, *sqlx.DB, *fakeStorage) {
	t.Helper()
	db := testutil.SetupDB(t)
	storage := newFakeStorage()
	uc := photo.NewPhotoUseCase(
		postgres.NewPhotoRepository(db),
		postgres.NewUserRepository(db),
		postgres.NewTxManager(db),
		storage,
	)
	return uc, db, storage
}

func upload(name string) photo.Upload {
	return photo.Upload{Filename: name, Data: strings.NewReader("image-bytes")}
}

func TestUploadPhotos_FirstPhotoBecomesPrimary(t *testing.T) {
	ctx := context.Background()
	uc, db, storage := newUseCase(t)
	alice := testutil.InsertUser(t, db, "Alice", "alice@example.com")

	created, err := uc.UploadPhotos(ctx, alice, []photo.Upload{upload("a.jpg"), upload("b.png")}, nil)
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.True(t, created[0].IsPrimary)
	assert.False(t, created[1].IsPrimary)
	assert.Len(t, storage.files, 2)
}

func TestUploadPhotos_ExplicitPrimaryUnsetsExisting(t *testing.T) {
	ctx := context.Background()
	uc, db, _ := newUseCase(t)
	alice := testutil.InsertUser(t, db, "Alice", "alice@example.com")

	_, err := uc.UploadPhotos(ctx, alice, []photo.Upload{upload("a.jpg")}, nil)
	require.NoError(t, err)

	idx := 1
	_, err = uc.UploadPhotos(ctx, alice, []photo.Upload{upload("b.jpg"), upload("c.jpg")}, &idx)
	require.NoError(t, err)

	photos, err := uc.ListPhotos(ctx, alice)
	require.NoError(t, err)
	require.Len(t, photos, 3)

	var primaries []string
	for _, p := range photos {
		if p.IsPrimary {
			primaries = append(primaries, p.URL)
		}
	}
	require.Len(t, primaries, 1)
	assert.Contains(t, primaries[0], "/3.") // c.jpg is the third saved file
}

func TestUploadPhotos_ExistingPrimaryKeptByDefault(t *testing.T) {
	ctx := context.Background()
	uc, db, _ := newUseCase(t)
	alice := testutil.InsertUser(t, db, "Alice", "alice@example.com")

	first, err := uc.UploadPhotos(ctx, alice, []photo.Upload{upload("a.jpg")}, nil)
	require.NoError(t, err)

	second, err := uc.UploadPhotos(ctx, alice, []photo.Upload{upload("b.jpg")}, nil)
	require.NoError(t, err)
	assert.False(t, second[0].IsPrimary)

	photos, err := uc.ListPhotos(ctx, alice)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, first[0].URL, photos[0].URL)
	assert.True(t, photos[0].IsPrimary)
}

func TestUploadPhotos_LimitEnforced(t *testing.T) {
	ctx := context.Background()
	uc, db, _ := newUseCase(t)
	alice := testutil.InsertUser(t, db, "Alice", "alice@example.com")

	uploads := make([]photo.Upload, 0, photo.MaxPhotosPerUser)
	for i := 0; i < photo.MaxPhotosPerUser; i++ {
		uploads = append(uploads, upload(fmt.Sprintf("p%d.jpg", i)))
	}
	_, err := uc.UploadPhotos(ctx, alice, uploads, nil)
	require.NoError(t, err)

	_, err = uc.UploadPhotos(ctx, alice, []photo.Upload{upload("over.jpg")}, nil)
	assert.ErrorIs(t, err, domain.ErrTooManyPhotos)
}

func TestUploadPhotos_DisallowedExtensionsSkipped(t *testing.T) {
	ctx := context.Background()
	uc, db, storage := newUseCase(t)
	alice := testutil.InsertUser(t, db, "Alice", "alice@example.com")

	created, err := uc.UploadPhotos(ctx, alice, []photo.Upload{upload("doc.pdf"), upload("ok.webp")}, nil)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Contains(t, created[0].URL, ".webp")
	assert.Len(t, storage.files, 1)

	_, err = uc.UploadPhotos(ctx, alice, []photo.Upload{upload("script.sh"), upload("noext")}, nil)
	assert.ErrorIs(t, err, domain.ErrNoValidFiles)
}

func TestUploadPhotos_UserMissing(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUseCase(t)

	_, err := uc.UploadPhotos(ctx, 9999, []photo.Upload{upload("a.jpg")}, nil)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDeletePhoto_PromotesOldestRemaining(t *testing.T) {
	ctx := context.Background()
	uc, db, storage := newUseCase(t)
	alice := testutil.InsertUser(t, db, "Alice", "alice@example.com")

	created, err := uc.UploadPhotos(ctx, alice, []photo.Upload{upload("a.jpg"), upload("b.jpg"), upload("c.jpg")}, nil)
	require.NoError(t, err)
	require.True(t, created[0].IsPrimary)

	require.NoError(t, uc.DeletePhoto(ctx, created[0].ID))

	photos, err := uc.ListPhotos(ctx, alice)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.True(t, photos[0].IsPrimary)
	assert.Equal(t, created[1].URL, photos[0].URL)
	assert.Contains(t, storage.removed, created[0].URL)
}

func TestDeletePhoto_LastPhoto(t *testing.T) {
	ctx := context.Background()
	uc, db, _ := newUseCase(t)
	alice := testutil.InsertUser(t, db, "Alice", "alice@example.com")

	created, err := uc.UploadPhotos(ctx, alice, []photo.Upload{upload("a.jpg")}, nil)
	require.NoError(t, err)

	require.NoError(t, uc.DeletePhoto(ctx, created[0].ID))

	photos, err := uc.ListPhotos(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, photos)
}

func TestDeletePhoto_NotFound(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUseCase(t)

	err := uc.DeletePhoto(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrPhotoNotFound)
}

func TestSetPrimary_Exclusive(t *testing.T) {
	ctx := context.Background()
	uc, db, _ := newUseCase(t)
	alice := testutil.InsertUser(t, db, "Alice", "alice@example.com")

	created, err := uc.UploadPhotos(ctx, alice, []photo.Upload{upload("a.jpg"), upload("b.jpg")}, nil)
	require.NoError(t, err)

	updated, err := uc.SetPrimary(ctx, created[1].ID)
	require.NoError(t, err)
	assert.True(t, updated.IsPrimary)

	photos, err := uc.ListPhotos(ctx, alice)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, created[1].ID, photos[0].ID)
	assert.True(t, photos[0].IsPrimary)
	assert.False(t, photos[1].IsPrimary)
}
