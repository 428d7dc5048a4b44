package repository

import (
	"context"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/jmoiron/sqlx"
)

type MatchRepository interface {
	// WithTx returns a view of the repository bound to tx.
	WithTx(tx *sqlx.Tx) MatchRepository

	// Create inserts the match with its pair normalized (user_1 < user_2).
	// A uniqueness-constraint violation on the normalized pair is reported
	// as domain.ErrMatchAlreadyExists so callers can treat the lost
	// insert race as the idempotent case.
	Create(ctx context.Context, match *domain.Match) error
	// GetByUsers looks a match up by unordered pair; the arguments are
	// normalized internally. Returns domain.ErrMatchNotFound when absent.
	GetByUsers(ctx context.Context, userA, userB int) (*domain.Match, error)
	// ListByUser returns the user's matches, newest first.
	ListByUser(ctx context.Context, userID int) ([]domain.Match, error)
	// ListMatchedUserIDs returns the counterpart id of every match the
	// user participates in, either side of the pair.
	ListMatchedUserIDs(ctx context.Context, userID int) ([]int, error)
	// UpdateAIFields stores generated explanation/icebreakers on a match.
	UpdateAIFields(ctx context.Context, matchID int, explanation string, icebreakers []string) error
}
