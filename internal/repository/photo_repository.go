package repository

import (
	"context"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/jmoiron/sqlx"
)

type PhotoRepository interface {
	// WithTx returns a view of the repository bound to tx.
	WithTx(tx *sqlx.Tx) PhotoRepository

	Create(ctx context.Context, photo *domain.ProfilePhoto) error
	GetByID(ctx context.Context, id int) (*domain.ProfilePhoto, error)
	// ListByUser returns the user's photos, primary first then upload time.
	ListByUser(ctx context.Context, userID int) ([]domain.ProfilePhoto, error)
	CountByUser(ctx context.Context, userID int) (int, error)
	// UnsetPrimary clears the primary flag on all of the user's photos
	// except exceptPhotoID (pass 0 to clear all).
	UnsetPrimary(ctx context.Context, userID, exceptPhotoID int) error
	SetPrimary(ctx context.Context, photoID int) error
	// OldestExcept returns the user's oldest photo other than exceptPhotoID,
	// or domain.ErrPhotoNotFound when none remains.
	OldestExcept(ctx context.Context, userID, exceptPhotoID int) (*domain.ProfilePhoto, error)
	Delete(ctx context.Context, photoID int) error
}
