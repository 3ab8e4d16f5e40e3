package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/domain"
	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/repository"
)

// personalBestRepository implements repository.PersonalBestRepository
type personalBestRepository struct {
	db *gorm.DB
}

// NewPersonalBestRepository creates a new PersonalBest repository.
func NewPersonalBestRepository(db *gorm.DB) repository.PersonalBestRepository {
	return &personalBestRepository{db: db}
}

// RecordIfBest runs the find-max and the conditional insert inside one
// transaction so two submissions for the same (user, exercise) pair cannot
// both compare against the same stale baseline. History is append-only: a
// superseded entry is never deleted, only out-lifted by a heavier one.
func (r *personalBestRepository) RecordIfBest(ctx context.Context, pb *domain.PersonalBest) (bool, error) {
	improved := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var best domain.PersonalBest
		err := tx.Where("user_id = ? AND exercise_name = ?", pb.UserID, pb.ExerciseName).
			Order("weight DESC").
			First(&best).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// First entry for this exercise always counts.
		case err != nil:
			return err
		case pb.Weight <= best.Weight:
			// Not an improvement; expected outcome, not an error.
			return nil
		}
		if err := tx.Create(pb).Error; err != nil {
			return err
		}
		improved = true
		return nil
	})
	return improved, err
}

// GetByUserID returns the user's full record history, most recent first.
func (r *personalBestRepository) GetByUserID(ctx context.Context, userID uint) ([]domain.PersonalBest, error) {
	var bests []domain.PersonalBest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&bests).Error
	if err != nil {
		return nil, err
	}
	return bests, nil
}

// GetBest returns the maximum-weight entry for the (user, exercise) pair.
// Ties on weight are broken arbitrarily; the comparison key is weight only.
func (r *personalBestRepository) GetBest(ctx context.Context, userID uint, exerciseName string) (*domain.PersonalBest, error) {
	var best domain.PersonalBest
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND exercise_name = ?", userID, exerciseName).
		Order("weight DESC").
		First(&best).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &best, nil
}

// Delete removes one entry by id, scoped to its owner.
func (r *personalBestRepository) Delete(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.PersonalBest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
