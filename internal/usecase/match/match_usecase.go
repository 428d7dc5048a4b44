package match

import (
	"context"
	"fmt"
	"time"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/logger"
	"github.com/databridge/dating-backend/internal/repository"
)

type MatchUseCase struct {
	matchRepo repository.MatchRepository
	userRepo  repository.UserRepository
}

func NewMatchUseCase(matchRepo repository.MatchRepository, userRepo repository.UserRepository) *MatchUseCase {
	return &MatchUseCase{matchRepo: matchRepo, userRepo: userRepo}
}

// MatchView is one entry of a user's match list: the match row plus the
// other participant's profile.
type MatchView struct {
	MatchID     int             `json:"match_id"`
	MatchedAt   time.Time       `json:"matched_at"`
	Explanation *string         `json:"match_explanation,omitempty"`
	Icebreakers []string        `json:"icebreakers,omitempty"`
	User        *domain.Profile `json:"user"`
}

// ListMatches returns the user's matches, newest first, each with the
// counterpart's profile attached. Matches whose counterpart profile can no
// longer be loaded are skipped.
func (uc *MatchUseCase) ListMatches(ctx context.Context, userID int) ([]MatchView, error) {
	matches, err := uc.matchRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	if len(matches) == 0 {
		return []MatchView{}, nil
	}

	ids := make([]int, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.OtherUserID(userID))
	}
	profiles, err := uc.userRepo.GetProfilesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load match profiles: %w", err)
	}

	out := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		otherID := m.OtherUserID(userID)
		profile, ok := profiles[otherID]
		if !ok {
			logger.Warn("dropping match without counterpart profile", "match_id", m.ID, "user_id", otherID)
			continue
		}
		out = append(out, MatchView{
			MatchID:     m.ID,
			MatchedAt:   m.MatchedAt,
			Explanation: m.Explanation,
			Icebreakers: []string(m.Icebreakers),
			User:        profile,
		})
	}
	return out, nil
}
