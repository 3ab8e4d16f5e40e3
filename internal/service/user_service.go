package service

import (
	"context"
	"errors"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/domain"
	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/repository"
)

// --- Error Definitions ---
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrSettingsValidation = errors.New("settings values must be positive and the weight unit must be kg or lb")
	ErrProfileValidation  = errors.New("profile values must be non-negative")
)

// ProfilePatch holds partial updates for a user's physical profile.
type ProfilePatch struct {
	Gender *string
	Age    *int
	Weight *float64
	Height *float64
}

// SettingsPatch holds partial updates for a user's logging preferences.
type SettingsPatch struct {
	WeightUnit   *domain.WeightUnit
	DefaultSets  *int
	DefaultReps  *int
	RestTimerSec *int
}

// UserService covers profile and settings maintenance plus account
// deletion, which cascades to everything the user owns.
type UserService interface {
	GetProfile(ctx context.Context, userID uint) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uint, patch ProfilePatch) (*domain.User, error)
	UpdateSettings(ctx context.Context, userID uint, patch SettingsPatch) (*domain.User, error)
	DeleteAccount(ctx context.Context, userID uint) error
}

// userService implements the UserService interface.
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies partial changes to the physical attributes.
func (s *userService) UpdateProfile(ctx context.Context, userID uint, patch ProfilePatch) (*domain.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patch.Gender != nil {
		user.Gender = *patch.Gender
	}
	if patch.Age != nil {
		if *patch.Age < 0 {
			return nil, ErrProfileValidation
		}
		user.Age = *patch.Age
	}
	if patch.Weight != nil {
		if *patch.Weight < 0 {
			return nil, ErrProfileValidation
		}
		user.Weight = *patch.Weight
	}
	if patch.Height != nil {
		if *patch.Height < 0 {
			return nil, ErrProfileValidation
		}
		user.Height = *patch.Height
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateSettings applies partial changes to the logging preferences.
func (s *userService) UpdateSettings(ctx context.Context, userID uint, patch SettingsPatch) (*domain.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patch.WeightUnit != nil {
		if *patch.WeightUnit != domain.UnitKg && *patch.WeightUnit != domain.UnitLb {
			return nil, ErrSettingsValidation
		}
		user.WeightUnit = *patch.WeightUnit
	}
	if patch.DefaultSets != nil {
		if *patch.DefaultSets <= 0 {
			return nil, ErrSettingsValidation
		}
		user.DefaultSets = *patch.DefaultSets
	}
	if patch.DefaultReps != nil {
		if *patch.DefaultReps <= 0 {
			return nil, ErrSettingsValidation
		}
		user.DefaultReps = *patch.DefaultReps
	}
	if patch.RestTimerSec != nil {
		if *patch.RestTimerSec <= 0 {
			return nil, ErrSettingsValidation
		}
		user.RestTimerSec = *patch.RestTimerSec
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user and everything they own.
func (s *userService) DeleteAccount(ctx context.Context, userID uint) error {
	err := s.userRepo.Delete(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
