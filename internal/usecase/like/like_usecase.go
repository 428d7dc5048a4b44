package like

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/logger"
	"github.com/databridge/dating-backend/internal/metrics"
	"github.com/databridge/dating-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

// Match status values returned to the client.
const (
	StatusLiked   = "liked"
	StatusMatched = "matched"
)

// AIEnricher generates post-match content. Implemented by the Gemini
// client; a nil enricher disables the feature.
type AIEnricher interface {
	GenerateMatchExplanation(ctx context.Context, user1Interests, user2Interests []string) (string, error)
	GenerateIcebreakers(ctx context.Context, user1Interests, user2Interests []string) ([]string, error)
}

type LikeUseCase struct {
	likeRepo     repository.LikeRepository
	matchRepo    repository.MatchRepository
	userRepo     repository.UserRepository
	interestRepo repository.InterestRepository
	txManager    repository.TxManager
	enricher     AIEnricher
}

func NewLikeUseCase(
	likeRepo repository.LikeRepository,
	matchRepo repository.MatchRepository,
	userRepo repository.UserRepository,
	interestRepo repository.InterestRepository,
	txManager repository.TxManager,
	enricher AIEnricher,
) *LikeUseCase {
	return &LikeUseCase{
		likeRepo:     likeRepo,
		matchRepo:    matchRepo,
		userRepo:     userRepo,
		interestRepo: interestRepo,
		txManager:    txManager,
		enricher:     enricher,
	}
}

// LikeResult represents the outcome of recording a like.
type LikeResult struct {
	MatchStatus string          `json:"match_status"`
	MatchedUser *domain.Profile `json:"matched_user,omitempty"`
}

// ReceivedLike pairs an incoming like with the liker's profile.
type ReceivedLike struct {
	User    *domain.Profile `json:"user"`
	LikedAt time.Time       `json:"liked_at"`
}

// RecordLike stores a directed like from likerID to likedID and reports
// whether the pair is now mutual. Repeating a like is a no-op that still
// reports the current mutual state. All like and match reads/writes happen
// in a single transaction; the unique constraint on the normalized match
// pair settles the race where both directions arrive concurrently.
func (uc *LikeUseCase) RecordLike(ctx context.Context, likerID, likedID int) (*LikeResult, error) {
	if likerID == likedID {
		return nil, domain.ErrCannotLikeSelf
	}

	// Resolve the target before touching any state; also the payload we
	// return if the like turns out to be mutual.
	targetProfile, err := uc.userRepo.GetProfile(ctx, likedID)
	if err != nil {
		return nil, err
	}

	var (
		mutual       bool
		alreadyLiked bool
		newMatch     *domain.Match
	)

	err = uc.txManager.RunInTx(ctx, func(tx *sqlx.Tx) error {
		likes := uc.likeRepo.WithTx(tx)
		matches := uc.matchRepo.WithTx(tx)

		alreadyLiked, err = likes.Exists(ctx, likerID, likedID)
		if err != nil {
			return fmt.Errorf("check existing like: %w", err)
		}
		if !alreadyLiked {
			like := &domain.Like{
				LikerID: likerID,
				LikedID: likedID,
				LikedAt: time.Now().UTC(),
			}
			if err := likes.Create(ctx, like); err != nil {
				return fmt.Errorf("create like: %w", err)
			}
		}

		// The reverse edge decides mutuality.
		mutual, err = likes.Exists(ctx, likedID, likerID)
		if err != nil {
			return fmt.Errorf("check reverse like: %w", err)
		}
		if !mutual {
			return nil
		}

		_, err = matches.GetByUsers(ctx, likerID, likedID)
		if err == nil {
			return nil // match already materialized
		}
		if !errors.Is(err, domain.ErrMatchNotFound) {
			return fmt.Errorf("look up match: %w", err)
		}

		match := &domain.Match{
			User1ID:   likerID,
			User2ID:   likedID,
			MatchedAt: time.Now().UTC(),
		}
		if err := matches.Create(ctx, match); err != nil {
			if errors.Is(err, domain.ErrMatchAlreadyExists) {
				// Lost the insert race to the opposite direction; the
				// match exists, which is all the caller needs.
				return nil
			}
			return fmt.Errorf("create match: %w", err)
		}
		newMatch = match
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &LikeResult{MatchStatus: StatusLiked}
	if mutual {
		result.MatchStatus = StatusMatched
		result.MatchedUser = targetProfile
	}

	switch {
	case mutual:
		metrics.LikesRecordedTotal.WithLabelValues(StatusMatched).Inc()
	case alreadyLiked:
		metrics.LikesRecordedTotal.WithLabelValues("repeat").Inc()
	default:
		metrics.LikesRecordedTotal.WithLabelValues(StatusLiked).Inc()
	}

	if newMatch != nil {
		metrics.MatchesCreatedTotal.Inc()
		logger.Info("match created",
			"match_id", newMatch.ID,
			"user_1_id", newMatch.User1ID,
			"user_2_id", newMatch.User2ID,
		)
		if uc.enricher != nil {
			go uc.enrichMatch(newMatch.ID, likerID, likedID)
		}
	}

	return result, nil
}

// ListLikesReceived returns the profiles of users who liked userID,
// newest like first. Likers whose profile can no longer be loaded are
// skipped.
func (uc *LikeUseCase) ListLikesReceived(ctx context.Context, userID int) ([]ReceivedLike, error) {
	received, err := uc.likeRepo.ListReceived(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list received likes: %w", err)
	}
	if len(received) == 0 {
		return []ReceivedLike{}, nil
	}

	ids := make([]int, 0, len(received))
	for _, l := range received {
		ids = append(ids, l.LikerID)
	}
	profiles, err := uc.userRepo.GetProfilesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load liker profiles: %w", err)
	}

	out := make([]ReceivedLike, 0, len(received))
	for _, l := range received {
		profile, ok := profiles[l.LikerID]
		if !ok {
			logger.Warn("dropping received like without profile", "liker_id", l.LikerID)
			continue
		}
		out = append(out, ReceivedLike{User: profile, LikedAt: l.LikedAt})
	}
	return out, nil
}

// enrichMatch runs after commit with its own deadline; failures are logged
// and never affect the like that triggered it.
func (uc *LikeUseCase) enrichMatch(matchID, user1ID, user2ID int) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log := logger.With("match_id", matchID)

	names1, err := uc.interestNames(ctx, user1ID)
	if err != nil {
		log.Warn("match enrichment skipped", "error", err)
		return
	}
	names2, err := uc.interestNames(ctx, user2ID)
	if err != nil {
		log.Warn("match enrichment skipped", "error", err)
		return
	}

	explanation, err := uc.enricher.GenerateMatchExplanation(ctx, names1, names2)
	if err != nil {
		log.Warn("failed to generate match explanation", "error", err)
		return
	}
	icebreakers, err := uc.enricher.GenerateIcebreakers(ctx, names1, names2)
	if err != nil {
		log.Warn("failed to generate icebreakers", "error", err)
		return
	}

	if err := uc.matchRepo.UpdateAIFields(ctx, matchID, explanation, icebreakers); err != nil {
		log.Warn("failed to store match enrichment", "error", err)
	}
}

func (uc *LikeUseCase) interestNames(ctx context.Context, userID int) ([]string, error) {
	interests, err := uc.interestRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list interests for user %d: %w", userID, err)
	}
	names := make([]string, 0, len(interests))
	for _, in := range interests {
		names = append(names, in.Name)
	}
	return names, nil
}
