package interest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/logger"
	"github.com/databridge/dating-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// The catalog is immutable reference data, so a long TTL is safe.
const (
	catalogCacheKey = "interests:catalog"
	catalogCacheTTL = time.Hour
)

type InterestUseCase struct {
	interestRepo repository.InterestRepository
	userRepo     repository.UserRepository
	txManager    repository.TxManager
	redis        *redis.Client // nil disables caching
}

func NewInterestUseCase(
	interestRepo repository.InterestRepository,
	userRepo repository.UserRepository,
	txManager repository.TxManager,
	redisClient *redis.Client,
) *InterestUseCase {
	return &InterestUseCase{
		interestRepo: interestRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		redis:        redisClient,
	}
}

// Available returns the interest catalog ordered by category then name,
// served from redis when possible. Cache failures fall through to the
// database and are only logged.
func (uc *InterestUseCase) Available(ctx context.Context) ([]domain.Interest, error) {
	if uc.redis != nil {
		raw, err := uc.redis.Get(ctx, catalogCacheKey).Bytes()
		if err == nil {
			var interests []domain.Interest
			if err := json.Unmarshal(raw, &interests); err == nil {
				return interests, nil
			}
			logger.Warn("corrupt interest catalog cache entry, refetching", "error", err)
		} else if !errors.Is(err, redis.Nil) {
			logger.Warn("interest catalog cache read failed", "error", err)
		}
	}

	interests, err := uc.interestRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interest catalog: %w", err)
	}

	if uc.redis != nil {
		if raw, err := json.Marshal(interests); err == nil {
			if err := uc.redis.Set(ctx, catalogCacheKey, raw, catalogCacheTTL).Err(); err != nil {
				logger.Warn("interest catalog cache write failed", "error", err)
			}
		}
	}
	return interests, nil
}

// ReplaceUserInterests swaps the user's interest set wholesale for the
// catalog entries matching names. Names with no catalog entry are skipped
// with a warning; the matched set is returned.
func (uc *InterestUseCase) ReplaceUserInterests(ctx context.Context, userID int, names []string) ([]domain.Interest, error) {
	exists, err := uc.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	var matched []domain.Interest
	if len(names) > 0 {
		matched, err = uc.interestRepo.ListByNames(ctx, names)
		if err != nil {
			return nil, fmt.Errorf("resolve interest names: %w", err)
		}
		if len(matched) < len(names) {
			known := make(map[string]struct{}, len(matched))
			for _, in := range matched {
				known[in.Name] = struct{}{}
			}
			for _, name := range names {
				if _, ok := known[name]; !ok {
					logger.Warn("skipping unknown interest", "user_id", userID, "name", name)
				}
			}
		}
	}

	ids := make([]int, 0, len(matched))
	for _, in := range matched {
		ids = append(ids, in.ID)
	}

	err = uc.txManager.RunInTx(ctx, func(tx *sqlx.Tx) error {
		return uc.interestRepo.WithTx(tx).ReplaceForUser(ctx, userID, ids)
	})
	if err != nil {
		return nil, fmt.Errorf("replace interests for user %d: %w", userID, err)
	}

	if matched == nil {
		matched = []domain.Interest{}
	}
	return matched, nil
}

// ListUserInterests returns the user's current interest set.
func (uc *InterestUseCase) ListUserInterests(ctx context.Context, userID int) ([]domain.Interest, error) {
	exists, err := uc.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}
	return uc.interestRepo.ListForUser(ctx, userID)
}
