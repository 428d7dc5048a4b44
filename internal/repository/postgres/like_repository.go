package postgres

import (
	"context"
	"fmt"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type likeRepository struct {
	db repository.Querier
}

func NewLikeRepository(db *sqlx.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) WithTx(tx *sqlx.Tx) repository.LikeRepository {
	return &likeRepository{db: tx}
}

func (r *likeRepository) Create(ctx context.Context, like *domain.Like) error {
	query := r.db.Rebind(`
		INSERT INTO likes (liker_id, liked_id, liked_at)
		VALUES (?, ?, ?)
	`)
	if _, err := r.db.ExecContext(ctx, query, like.LikerID, like.LikedID, like.LikedAt); err != nil {
		return fmt.Errorf("insert like %d->%d: %w", like.LikerID, like.LikedID, err)
	}
	return nil
}

func (r *likeRepository) Exists(ctx context.Context, likerID, likedID int) (bool, error) {
	var count int
	query := r.db.Rebind(`SELECT COUNT(*) FROM likes WHERE liker_id = ? AND liked_id = ?`)
	if err := r.db.GetContext(ctx, &count, query, likerID, likedID); err != nil {
		return false, fmt.Errorf("check like %d->%d: %w", likerID, likedID, err)
	}
	return count > 0, nil
}

func (r *likeRepository) ListLikedIDs(ctx context.Context, likerID int) ([]int, error) {
	var ids []int
	query := r.db.Rebind(`SELECT liked_id FROM likes WHERE liker_id = ?`)
	if err := r.db.SelectContext(ctx, &ids, query, likerID); err != nil {
		return nil, fmt.Errorf("list liked ids for %d: %w", likerID, err)
	}
	return ids, nil
}

func (r *likeRepository) ListReceived(ctx context.Context, likedID int) ([]domain.Like, error) {
	var likes []domain.Like
	query := r.db.Rebind(`
		SELECT liker_id, liked_id, liked_at
		FROM likes
		WHERE liked_id = ?
		ORDER BY liked_at DESC, liker_id DESC
	`)
	if err := r.db.SelectContext(ctx, &likes, query, likedID); err != nil {
		return nil, fmt.Errorf("list likes received by %d: %w", likedID, err)
	}
	return likes, nil
}
