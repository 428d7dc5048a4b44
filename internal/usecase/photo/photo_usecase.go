package photo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/logger"
	"github.com/databridge/dating-backend/internal/metrics"
	"github.com/databridge/dating-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

const MaxPhotosPerUser = 6

// AllowedExtensions lists the accepted image file extensions, lowercase,
// without the leading dot.
var AllowedExtensions = []string{"png", "jpg", "jpeg", "webp"}

// Storage persists photo bytes and serves them back by URL path.
// Implemented by the local-disk store under the static file root.
type Storage interface {
	// Save writes src under the user's directory with the given extension
	// and returns the URL path the file is served from.
	Save(userID int, ext string, src io.Reader) (string, error)
	// Remove deletes the file behind a previously returned URL path.
	Remove(photoURL string) error
}

// Upload is one file from a multipart upload request.
type Upload struct {
	Filename string
	Data     io.Reader
}

type PhotoUseCase struct {
	photoRepo repository.PhotoRepository
	userRepo  repository.UserRepository
	txManager repository.TxManager
	storage   Storage
}

func NewPhotoUseCase(
	photoRepo repository.PhotoRepository,
	userRepo repository.UserRepository,
	txManager repository.TxManager,
	storage Storage,
) *PhotoUseCase {
	return &PhotoUseCase{
		photoRepo: photoRepo,
		userRepo:  userRepo,
		txManager: txManager,
		storage:   storage,
	}
}

// UploadPhotos saves the uploaded files and records them for the user.
// Files with a disallowed extension are skipped with a warning; if nothing
// valid remains the request fails with ErrNoValidFiles. primaryIndex, when
// set and in range, designates which new upload becomes primary; otherwise
// the first-ever photo of the user defaults to primary and an existing
// primary is left alone.
func (uc *PhotoUseCase) UploadPhotos(ctx context.Context, userID int, uploads []Upload, primaryIndex *int) ([]domain.ProfilePhoto, error) {
	exists, err := uc.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}
	if len(uploads) == 0 {
		return nil, domain.ErrNoValidFiles
	}

	count, err := uc.photoRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count photos: %w", err)
	}
	if count+len(uploads) > MaxPhotosPerUser {
		return nil, domain.ErrTooManyPhotos
	}

	// -1 means no new upload is designated primary.
	newPrimary := 0
	if primaryIndex != nil && *primaryIndex >= 0 && *primaryIndex < len(uploads) {
		newPrimary = *primaryIndex
	} else if count > 0 {
		newPrimary = -1
	}

	// Save files first so the DB writes can happen in one transaction;
	// saved files are rolled back by hand if that transaction fails.
	var (
		created   []domain.ProfilePhoto
		savedURLs []string
		now       = time.Now().UTC()
	)
	for index, up := range uploads {
		ext, ok := allowedExt(up.Filename)
		if !ok {
			logger.Warn("skipping file with disallowed extension", "user_id", userID, "filename", up.Filename)
			continue
		}

		url, err := uc.storage.Save(userID, ext, up.Data)
		if err != nil {
			uc.removeFiles(savedURLs)
			return nil, fmt.Errorf("save photo file: %w", err)
		}
		savedURLs = append(savedURLs, url)

		created = append(created, domain.ProfilePhoto{
			UserID:     userID,
			URL:        url,
			IsPrimary:  index == newPrimary || (newPrimary == -1 && count == 0 && index == 0),
			UploadedAt: now,
		})
	}
	if len(created) == 0 {
		return nil, domain.ErrNoValidFiles
	}

	err = uc.txManager.RunInTx(ctx, func(tx *sqlx.Tx) error {
		photos := uc.photoRepo.WithTx(tx)
		if newPrimary != -1 {
			if err := photos.UnsetPrimary(ctx, userID, 0); err != nil {
				return fmt.Errorf("unset primary: %w", err)
			}
		}
		for i := range created {
			if err := photos.Create(ctx, &created[i]); err != nil {
				return fmt.Errorf("create photo record: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		uc.removeFiles(savedURLs)
		return nil, err
	}

	metrics.PhotoUploadsTotal.Add(float64(len(created)))
	return created, nil
}

// ListPhotos returns the user's photos, primary first then upload time.
func (uc *PhotoUseCase) ListPhotos(ctx context.Context, userID int) ([]domain.ProfilePhoto, error) {
	exists, err := uc.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}
	return uc.photoRepo.ListByUser(ctx, userID)
}

// DeletePhoto removes a photo record and its file. Deleting the primary
// photo promotes the oldest remaining photo, if any, in the same
// transaction. A failed file removal is logged, not surfaced.
func (uc *PhotoUseCase) DeletePhoto(ctx context.Context, photoID int) error {
	target, err := uc.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return err
	}

	err = uc.txManager.RunInTx(ctx, func(tx *sqlx.Tx) error {
		photos := uc.photoRepo.WithTx(tx)
		if target.IsPrimary {
			next, err := photos.OldestExcept(ctx, target.UserID, photoID)
			switch {
			case err == nil:
				if err := photos.SetPrimary(ctx, next.ID); err != nil {
					return fmt.Errorf("promote photo %d: %w", next.ID, err)
				}
			case errors.Is(err, domain.ErrPhotoNotFound):
				// last photo, nothing to promote
			default:
				return fmt.Errorf("find replacement primary: %w", err)
			}
		}
		return photos.Delete(ctx, photoID)
	})
	if err != nil {
		return err
	}

	if err := uc.storage.Remove(target.URL); err != nil {
		logger.Warn("failed to remove photo file", "photo_id", photoID, "url", target.URL, "error", err)
	}
	return nil
}

// SetPrimary marks the photo as its owner's primary, clearing the flag on
// every other photo of that user in the same transaction.
func (uc *PhotoUseCase) SetPrimary(ctx context.Context, photoID int) (*domain.ProfilePhoto, error) {
	target, err := uc.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTx(ctx, func(tx *sqlx.Tx) error {
		photos := uc.photoRepo.WithTx(tx)
		if err := photos.UnsetPrimary(ctx, target.UserID, photoID); err != nil {
			return fmt.Errorf("unset primary: %w", err)
		}
		return photos.SetPrimary(ctx, photoID)
	})
	if err != nil {
		return nil, err
	}

	target.IsPrimary = true
	return target, nil
}

func (uc *PhotoUseCase) removeFiles(urls []string) {
	for _, url := range urls {
		if err := uc.storage.Remove(url); err != nil {
			logger.Warn("failed to clean up photo file", "url", url, "error", err)
		}
	}
}

func allowedExt(filename string) (string, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return "", false
	}
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return ext, true
		}
	}
	return "", false
}
