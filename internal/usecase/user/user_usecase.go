package user

import (
	"context"
	"fmt"
	"time"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/logger"
	"github.com/databridge/dating-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// SignUpRequest carries the fields accepted at registration.
type SignUpRequest struct {
	Name     string     `json:"name" binding:"required,min=1,max=100"`
	Email    string     `json:"email" binding:"required,email"`
	Password string     `json:"password" binding:"required,min=8,max=72"`
	Gender   *string    `json:"gender" binding:"omitempty,gender"`
	DOB      *time.Time `json:"dob"`
	Location *string    `json:"location" binding:"omitempty,max=255"`
	Bio      *string    `json:"bio" binding:"omitempty,max=2000"`
}

// UpdateProfileRequest carries the mutable profile fields; nil means
// "leave unchanged". At least one field must be set.
type UpdateProfileRequest struct {
	Name     *string    `json:"name" binding:"omitempty,min=1,max=100"`
	Gender   *string    `json:"gender" binding:"omitempty,gender"`
	DOB      *time.Time `json:"dob"`
	Location *string    `json:"location" binding:"omitempty,max=255"`
	Bio      *string    `json:"bio" binding:"omitempty,max=2000"`
}

func (r *UpdateProfileRequest) empty() bool {
	return r.Name == nil && r.Gender == nil && r.DOB == nil && r.Location == nil && r.Bio == nil
}

// SignUp registers a new user. The password is stored as a bcrypt hash;
// a duplicate email surfaces as domain.ErrEmailTaken.
func (uc *UserUseCase) SignUp(ctx context.Context, req *SignUpRequest) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         &req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Gender:       req.Gender,
		DOB:          req.DOB,
		Location:     req.Location,
		Bio:          req.Bio,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("user signed up", "user_id", user.ID)
	return user, nil
}

// UpdateProfile applies the non-nil fields of req to the user's row.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID int, req *UpdateProfileRequest) (*domain.User, error) {
	if req.empty() {
		return nil, domain.ErrNoUpdateData
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = req.Name
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.DOB != nil {
		user.DOB = req.DOB
	}
	if req.Location != nil {
		user.Location = req.Location
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetProfile returns the user together with interests and photos.
func (uc *UserUseCase) GetProfile(ctx context.Context, userID int) (*domain.Profile, error) {
	return uc.userRepo.GetProfile(ctx, userID)
}
