package repository

import (
	"context"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/jmoiron/sqlx"
)

type InterestRepository interface {
	// WithTx returns a view of the repository bound to tx.
	WithTx(tx *sqlx.Tx) InterestRepository

	// ListAll returns the full catalog ordered by category then name.
	ListAll(ctx context.Context) ([]domain.Interest, error)
	ListByNames(ctx context.Context, names []string) ([]domain.Interest, error)
	ListForUser(ctx context.Context, userID int) ([]domain.Interest, error)
	ListIDsForUser(ctx context.Context, userID int) ([]int, error)
	// ReplaceForUser swaps the user's association rows wholesale.
	ReplaceForUser(ctx context.Context, userID int, interestIDs []int) error

	// RankBySharedInterests groups the association table by user id over
	// rows whose interest id is in interestIDs and whose user id is not in
	// excludedIDs, ordered by shared count descending (user id ascending
	// as a deterministic tie-break), limited to limit rows.
	RankBySharedInterests(ctx context.Context, interestIDs, excludedIDs []int, limit int) ([]domain.RankedCandidate, error)
}
