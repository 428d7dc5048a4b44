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

type userRepository struct {
	db repository.Querier
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := r.db.Rebind(`
		INSERT INTO users (name, email, password_hash, gender, dob, location, bio, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING user_id
	`)
	err := r.db.QueryRowxContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Gender,
		user.DOB, user.Location, user.Bio, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	query := r.db.Rebind(`
		SELECT user_id, name, email, password_hash, gender, dob, location, bio, created_at
		FROM users WHERE user_id = ?
	`)
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := r.db.Rebind(`
		SELECT user_id, name, email, password_hash, gender, dob, location, bio, created_at
		FROM users WHERE email = ?
	`)
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int
	query := r.db.Rebind(`SELECT COUNT(*) FROM users WHERE user_id = ?`)
	if err := r.db.GetContext(ctx, &count, query, id); err != nil {
		return false, fmt.Errorf("check user %d: %w", id, err)
	}
	return count > 0, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := r.db.Rebind(`
		UPDATE users
		SET name = ?, gender = ?, dob = ?, location = ?, bio = ?
		WHERE user_id = ?
	`)
	res, err := r.db.ExecContext(ctx, query,
		user.Name, user.Gender, user.DOB, user.Location, user.Bio, user.ID,
	)
	if err != nil {
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) GetProfile(ctx context.Context, id int) (*domain.Profile, error) {
	profiles, err := r.GetProfilesByIDs(ctx, []int{id})
	if err != nil {
		return nil, err
	}
	profile, ok := profiles[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return profile, nil
}

// userInterestRow joins an interest to the owning user id for bulk loads.
type userInterestRow struct {
	UserID int `db:"user_id"`
	domain.Interest
}

func (r *userRepository) GetProfilesByIDs(ctx context.Context, ids []int) (map[int]*domain.Profile, error) {
	profiles := make(map[int]*domain.Profile, len(ids))
	if len(ids) == 0 {
		return profiles, nil
	}

	query, args, err := sqlx.In(`
		SELECT user_id, name, email, password_hash, gender, dob, location, bio, created_at
		FROM users WHERE user_id IN (?)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("build users query: %w", err)
	}
	var users []domain.User
	if err := r.db.SelectContext(ctx, &users, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("bulk load users: %w", err)
	}
	for i := range users {
		profiles[users[i].ID] = &domain.Profile{
			User:      users[i],
			Interests: []domain.Interest{},
			Photos:    []domain.ProfilePhoto{},
		}
	}

	query, args, err = sqlx.In(`
		SELECT ui.user_id, i.interest_id, i.name, i.category
		FROM interests i
		JOIN user_interests ui ON ui.interest_id = i.interest_id
		WHERE ui.user_id IN (?)
		ORDER BY i.category, i.name
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("build interests query: %w", err)
	}
	var interestRows []userInterestRow
	if err := r.db.SelectContext(ctx, &interestRows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("bulk load interests: %w", err)
	}
	for _, row := range interestRows {
		if p, ok := profiles[row.UserID]; ok {
			p.Interests = append(p.Interests, row.Interest)
		}
	}

	query, args, err = sqlx.In(`
		SELECT photo_id, user_id, photo_url, is_primary, uploaded_at
		FROM profile_photos
		WHERE user_id IN (?)
		ORDER BY is_primary DESC, uploaded_at ASC
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("build photos query: %w", err)
	}
	var photos []domain.ProfilePhoto
	if err := r.db.SelectContext(ctx, &photos, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("bulk load photos: %w", err)
	}
	for _, photo := range photos {
		if p, ok := profiles[photo.UserID]; ok {
			p.Photos = append(p.Photos, photo)
		}
	}

	return profiles, nil
}

func (r *userRepository) ListNewestIDs(ctx context.Context, excluded []int, limit int) ([]int, error) {
	var ids []int
	if len(excluded) == 0 {
		query := r.db.Rebind(`SELECT user_id FROM users ORDER BY created_at DESC, user_id DESC LIMIT ?`)
		if err := r.db.SelectContext(ctx, &ids, query, limit); err != nil {
			return nil, fmt.Errorf("list newest users: %w", err)
		}
		return ids, nil
	}

	query, args, err := sqlx.In(`
		SELECT user_id FROM users
		WHERE user_id NOT IN (?)
		ORDER BY created_at DESC, user_id DESC
		LIMIT ?
	`, excluded, limit)
	if err != nil {
		return nil, fmt.Errorf("build newest users query: %w", err)
	}
	if err := r.db.SelectContext(ctx, &ids, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list newest users: %w", err)
	}
	return ids, nil
}
