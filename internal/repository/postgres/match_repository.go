package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type matchRepository struct {
	db repository.Querier
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) WithTx(tx *sqlx.Tx) repository.MatchRepository {
	return &matchRepository{db: tx}
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	match.User1ID, match.User2ID = domain.NormalizePair(match.User1ID, match.User2ID)

	query := r.db.Rebind(`
		INSERT INTO matches (user_1_id, user_2_id, matched_at)
		VALUES (?, ?, ?)
		RETURNING match_id
	`)
	err := r.db.QueryRowxContext(ctx, query, match.User1ID, match.User2ID, match.MatchedAt).
		Scan(&match.ID)
	if err != nil {
		if isUniqueViolation(err) {
			// Lost the race against the reverse like; the pair is already
			// matched, which callers treat as success.
			return domain.ErrMatchAlreadyExists
		}
		return fmt.Errorf("insert match (%d,%d): %w", match.User1ID, match.User2ID, err)
	}
	return nil
}

func (r *matchRepository) GetByUsers(ctx context.Context, userA, userB int) (*domain.Match, error) {
	u1, u2 := domain.NormalizePair(userA, userB)

	var match domain.Match
	query := r.db.Rebind(`
		SELECT match_id, user_1_id, user_2_id, matched_at, match_explanation, icebreakers
		FROM matches
		WHERE user_1_id = ? AND user_2_id = ?
	`)
	err := r.db.GetContext(ctx, &match, query, u1, u2)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, fmt.Errorf("get match (%d,%d): %w", u1, u2, err)
	}
	return &match, nil
}

func (r *matchRepository) ListByUser(ctx context.Context, userID int) ([]domain.Match, error) {
	var matches []domain.Match
	query := r.db.Rebind(`
		SELECT match_id, user_1_id, user_2_id, matched_at, match_explanation, icebreakers
		FROM matches
		WHERE user_1_id = ? OR user_2_id = ?
		ORDER BY matched_at DESC, match_id DESC
	`)
	if err := r.db.SelectContext(ctx, &matches, query, userID, userID); err != nil {
		return nil, fmt.Errorf("list matches for %d: %w", userID, err)
	}
	return matches, nil
}

func (r *matchRepository) ListMatchedUserIDs(ctx context.Context, userID int) ([]int, error) {
	var ids []int
	query := r.db.Rebind(`
		SELECT CASE WHEN user_1_id = ? THEN user_2_id ELSE user_1_id END
		FROM matches
		WHERE user_1_id = ? OR user_2_id = ?
	`)
	if err := r.db.SelectContext(ctx, &ids, query, userID, userID, userID); err != nil {
		return nil, fmt.Errorf("list matched ids for %d: %w", userID, err)
	}
	return ids, nil
}

func (r *matchRepository) UpdateAIFields(ctx context.Context, matchID int, explanation string, icebreakers []string) error {
	query := r.db.Rebind(`
		UPDATE matches
		SET match_explanation = ?, icebreakers = ?
		WHERE match_id = ?
	`)
	res, err := r.db.ExecContext(ctx, query, explanation, pq.Array(icebreakers), matchID)
	if err != nil {
		return fmt.Errorf("update match %d ai fields: %w", matchID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}
