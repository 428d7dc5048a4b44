package postgres

import (
	"context"
	"fmt"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type interestRepository struct {
	db repository.Querier
}

func NewInterestRepository(db *sqlx.DB) repository.InterestRepository {
	return &interestRepository{db: db}
}

func (r *interestRepository) WithTx(tx *sqlx.Tx) repository.InterestRepository {
	return &interestRepository{db: tx}
}

func (r *interestRepository) ListAll(ctx context.Context) ([]domain.Interest, error) {
	var interests []domain.Interest
	query := `SELECT interest_id, name, category FROM interests ORDER BY category, name`
	if err := r.db.SelectContext(ctx, &interests, query); err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}
	return interests, nil
}

func (r *interestRepository) ListByNames(ctx context.Context, names []string) ([]domain.Interest, error) {
	if len(names) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`
		SELECT interest_id, name, category FROM interests WHERE name IN (?)
	`, names)
	if err != nil {
		return nil, fmt.Errorf("build interests-by-name query: %w", err)
	}
	var interests []domain.Interest
	if err := r.db.SelectContext(ctx, &interests, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list interests by name: %w", err)
	}
	return interests, nil
}

func (r *interestRepository) ListForUser(ctx context.Context, userID int) ([]domain.Interest, error) {
	var interests []domain.Interest
	query := r.db.Rebind(`
		SELECT i.interest_id, i.name, i.category
		FROM interests i
		JOIN user_interests ui ON ui.interest_id = i.interest_id
		WHERE ui.user_id = ?
		ORDER BY i.category, i.name
	`)
	if err := r.db.SelectContext(ctx, &interests, query, userID); err != nil {
		return nil, fmt.Errorf("list interests for user %d: %w", userID, err)
	}
	return interests, nil
}

func (r *interestRepository) ListIDsForUser(ctx context.Context, userID int) ([]int, error) {
	var ids []int
	query := r.db.Rebind(`SELECT interest_id FROM user_interests WHERE user_id = ?`)
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, fmt.Errorf("list interest ids for user %d: %w", userID, err)
	}
	return ids, nil
}

func (r *interestRepository) ReplaceForUser(ctx context.Context, userID int, interestIDs []int) error {
	query := r.db.Rebind(`DELETE FROM user_interests WHERE user_id = ?`)
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("clear interests for user %d: %w", userID, err)
	}

	insert := r.db.Rebind(`INSERT INTO user_interests (user_id, interest_id) VALUES (?, ?)`)
	for _, interestID := range interestIDs {
		if _, err := r.db.ExecContext(ctx, insert, userID, interestID); err != nil {
			return fmt.Errorf("link interest %d to user %d: %w", interestID, userID, err)
		}
	}
	return nil
}

func (r *interestRepository) RankBySharedInterests(ctx context.Context, interestIDs, excludedIDs []int, limit int) ([]domain.RankedCandidate, error) {
	if len(interestIDs) == 0 {
		return nil, nil
	}
	// excludedIDs always contains at least the caller's own id.
	query, args, err := sqlx.In(`
		SELECT user_id, COUNT(interest_id) AS shared_count
		FROM user_interests
		WHERE interest_id IN (?) AND user_id NOT IN (?)
		GROUP BY user_id
		ORDER BY shared_count DESC, user_id ASC
		LIMIT ?
	`, interestIDs, excludedIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("build ranking query: %w", err)
	}

	var ranked []domain.RankedCandidate
	if err := r.db.SelectContext(ctx, &ranked, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("rank candidates by shared interests: %w", err)
	}
	return ranked, nil
}
