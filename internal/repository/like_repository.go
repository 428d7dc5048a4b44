package repository

import (
	"context"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/jmoiron/sqlx"
)

type LikeRepository interface {
	// WithTx returns a view of the repository bound to tx.
	WithTx(tx *sqlx.Tx) LikeRepository

	Create(ctx context.Context, like *domain.Like) error
	Exists(ctx context.Context, likerID, likedID int) (bool, error)
	// ListLikedIDs returns every id the user has liked (directed edge).
	ListLikedIDs(ctx context.Context, likerID int) ([]int, error)
	// ListReceived returns likes pointing at the user, newest first.
	ListReceived(ctx context.Context, likedID int) ([]domain.Like, error)
}
