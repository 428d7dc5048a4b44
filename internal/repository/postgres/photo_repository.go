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

type photoRepository struct {
	db repository.Querier
}

func NewPhotoRepository(db *sqlx.DB) repository.PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) WithTx(tx *sqlx.Tx) repository.PhotoRepository {
	return &photoRepository{db: tx}
}

func (r *photoRepository) Create(ctx context.Context, photo *domain.ProfilePhoto) error {
	query := r.db.Rebind(`
		INSERT INTO profile_photos (user_id, photo_url, is_primary, uploaded_at)
		VALUES (?, ?, ?, ?)
		RETURNING photo_id
	`)
	err := r.db.QueryRowxContext(ctx, query,
		photo.UserID, photo.URL, photo.IsPrimary, photo.UploadedAt,
	).Scan(&photo.ID)
	if err != nil {
		return fmt.Errorf("insert photo for user %d: %w", photo.UserID, err)
	}
	return nil
}

func (r *photoRepository) GetByID(ctx context.Context, id int) (*domain.ProfilePhoto, error) {
	var photo domain.ProfilePhoto
	query := r.db.Rebind(`
		SELECT photo_id, user_id, photo_url, is_primary, uploaded_at
		FROM profile_photos WHERE photo_id = ?
	`)
	if err := r.db.GetContext(ctx, &photo, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("get photo %d: %w", id, err)
	}
	return &photo, nil
}

func (r *photoRepository) ListByUser(ctx context.Context, userID int) ([]domain.ProfilePhoto, error) {
	var photos []domain.ProfilePhoto
	query := r.db.Rebind(`
		SELECT photo_id, user_id, photo_url, is_primary, uploaded_at
		FROM profile_photos
		WHERE user_id = ?
		ORDER BY is_primary DESC, uploaded_at ASC, photo_id ASC
	`)
	if err := r.db.SelectContext(ctx, &photos, query, userID); err != nil {
		return nil, fmt.Errorf("list photos for user %d: %w", userID, err)
	}
	return photos, nil
}

func (r *photoRepository) CountByUser(ctx context.Context, userID int) (int, error) {
	var count int
	query := r.db.Rebind(`SELECT COUNT(*) FROM profile_photos WHERE user_id = ?`)
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("count photos for user %d: %w", userID, err)
	}
	return count, nil
}

func (r *photoRepository) UnsetPrimary(ctx context.Context, userID, exceptPhotoID int) error {
	query := r.db.Rebind(`
		UPDATE profile_photos
		SET is_primary = ?
		WHERE user_id = ? AND photo_id <> ? AND is_primary = ?
	`)
	if _, err := r.db.ExecContext(ctx, query, false, userID, exceptPhotoID, true); err != nil {
		return fmt.Errorf("unset primary photos for user %d: %w", userID, err)
	}
	return nil
}

func (r *photoRepository) SetPrimary(ctx context.Context, photoID int) error {
	query := r.db.Rebind(`UPDATE profile_photos SET is_primary = ? WHERE photo_id = ?`)
	res, err := r.db.ExecContext(ctx, query, true, photoID)
	if err != nil {
		return fmt.Errorf("set primary photo %d: %w", photoID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

func (r *photoRepository) OldestExcept(ctx context.Context, userID, exceptPhotoID int) (*domain.ProfilePhoto, error) {
	var photo domain.ProfilePhoto
	query := r.db.Rebind(`
		SELECT photo_id, user_id, photo_url, is_primary, uploaded_at
		FROM profile_photos
		WHERE user_id = ? AND photo_id <> ?
		ORDER BY uploaded_at ASC, photo_id ASC
		LIMIT 1
	`)
	if err := r.db.GetContext(ctx, &photo, query, userID, exceptPhotoID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("get oldest photo for user %d: %w", userID, err)
	}
	return &photo, nil
}

func (r *photoRepository) Delete(ctx context.Context, photoID int) error {
	query := r.db.Rebind(`DELETE FROM profile_photos WHERE photo_id = ?`)
	res, err := r.db.ExecContext(ctx, query, photoID)
	if err != nil {
		return fmt.Errorf("delete photo %d: %w", photoID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}
