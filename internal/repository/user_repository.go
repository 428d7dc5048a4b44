package repository

import (
	"context"

	"github.com/databridge/dating-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Exists(ctx context.Context, id int) (bool, error)
	Update(ctx context.Context, user *domain.User) error

	// GetProfile returns the user with interests and photos attached.
	GetProfile(ctx context.Context, id int) (*domain.Profile, error)
	// GetProfilesByIDs bulk-loads profiles; ids absent from the result were
	// not found (e.g. deleted concurrently). No ordering is implied.
	GetProfilesByIDs(ctx context.Context, ids []int) (map[int]*domain.Profile, error)
	// ListNewestIDs returns ids of the most recently created users that are
	// not in excluded, newest first.
	ListNewestIDs(ctx context.Context, excluded []int, limit int) ([]int, error)
}
