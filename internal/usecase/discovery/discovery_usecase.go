package discovery

import (
	"context"
	"fmt"
	"time"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/logger"
	"github.com/databridge/dating-backend/internal/metrics"
	"github.com/databridge/dating-backend/internal/repository"
)

// Policies for callers who have not selected any interests yet.
const (
	PolicyNone   = "none"   // return an empty list
	PolicyNewest = "newest" // fall back to the newest sign-ups, unranked
)

const DefaultLimit = 20

type DiscoveryUseCase struct {
	userRepo     repository.UserRepository
	likeRepo     repository.LikeRepository
	matchRepo    repository.MatchRepository
	interestRepo repository.InterestRepository

	emptyInterestsPolicy string
}

func NewDiscoveryUseCase(
	userRepo repository.UserRepository,
	likeRepo repository.LikeRepository,
	matchRepo repository.MatchRepository,
	interestRepo repository.InterestRepository,
	emptyInterestsPolicy string,
) *DiscoveryUseCase {
	if emptyInterestsPolicy == "" {
		emptyInterestsPolicy = PolicyNone
	}
	return &DiscoveryUseCase{
		userRepo:             userRepo,
		likeRepo:             likeRepo,
		matchRepo:            matchRepo,
		interestRepo:         interestRepo,
		emptyInterestsPolicy: emptyInterestsPolicy,
	}
}

// FindCandidates returns up to limit profiles sharing at least one interest
// with userID, most shared interests first. Users the caller already liked
// or matched with are excluded, as is the caller. Candidates whose profile
// cannot be loaded (deleted mid-request) are dropped, never an error.
func (uc *DiscoveryUseCase) FindCandidates(ctx context.Context, userID, limit int) ([]*domain.Profile, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	start := time.Now()
	defer func() {
		metrics.CandidateSearchDuration.Observe(time.Since(start).Seconds())
	}()

	interestIDs, err := uc.interestRepo.ListIDsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list caller interests: %w", err)
	}

	excluded, err := uc.exclusionSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(interestIDs) == 0 {
		if uc.emptyInterestsPolicy == PolicyNewest {
			return uc.newestFallback(ctx, excluded, limit)
		}
		return []*domain.Profile{}, nil
	}

	// Overfetch so downstream drops do not leave the page short.
	ranked, err := uc.interestRepo.RankBySharedInterests(ctx, interestIDs, excluded, 2*limit)
	if err != nil {
		return nil, fmt.Errorf("rank candidates: %w", err)
	}
	if len(ranked) == 0 {
		return []*domain.Profile{}, nil
	}

	ids := make([]int, 0, len(ranked))
	for _, c := range ranked {
		ids = append(ids, c.UserID)
	}
	return uc.assemble(ctx, ids, limit)
}

// exclusionSet is the caller plus everyone they liked or matched with.
func (uc *DiscoveryUseCase) exclusionSet(ctx context.Context, userID int) ([]int, error) {
	likedIDs, err := uc.likeRepo.ListLikedIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list liked ids: %w", err)
	}
	matchedIDs, err := uc.matchRepo.ListMatchedUserIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list matched ids: %w", err)
	}

	seen := map[int]struct{}{userID: {}}
	excluded := []int{userID}
	for _, id := range append(likedIDs, matchedIDs...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		excluded = append(excluded, id)
	}
	return excluded, nil
}

// assemble bulk-loads profiles and rebuilds the ranked order, since the
// bulk fetch does not preserve it.
func (uc *DiscoveryUseCase) assemble(ctx context.Context, rankedIDs []int, limit int) ([]*domain.Profile, error) {
	profiles, err := uc.userRepo.GetProfilesByIDs(ctx, rankedIDs)
	if err != nil {
		return nil, fmt.Errorf("load candidate profiles: %w", err)
	}

	out := make([]*domain.Profile, 0, limit)
	for _, id := range rankedIDs {
		profile, ok := profiles[id]
		if !ok {
			logger.Warn("dropping candidate without profile", "user_id", id)
			continue
		}
		out = append(out, profile)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (uc *DiscoveryUseCase) newestFallback(ctx context.Context, excluded []int, limit int) ([]*domain.Profile, error) {
	ids, err := uc.userRepo.ListNewestIDs(ctx, excluded, 2*limit)
	if err != nil {
		return nil, fmt.Errorf("list newest users: %w", err)
	}
	if len(ids) == 0 {
		return []*domain.Profile{}, nil
	}
	return uc.assemble(ctx, ids, limit)
}
