package sqlite

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/domain"
	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/repository"
)

// exerciseRepository implements repository.ExerciseRepository
type exerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository creates a new Exercise repository.
func NewExerciseRepository(db *gorm.DB) repository.ExerciseRepository {
	return &exerciseRepository{db: db}
}

// Create inserts a single exercise under an existing workout.
func (r *exerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) error {
	return r.db.WithContext(ctx).Create(exercise).Error
}

// GetOwned retrieves an exercise only if its parent workout belongs to the
// given user. The join is the ownership check; there is no separate
// authorization step.
func (r *exerciseRepository) GetOwned(ctx context.Context, userID, exerciseID uint) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := r.db.WithContext(ctx).
		Joins("JOIN workouts ON workouts.id = exercises.workout_id").
		Where("exercises.id = ? AND workouts.user_id = ?", exerciseID, userID).
		First(&exercise).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// Update applies field changes to one exercise and refreshes its
// timestamp.
func (r *exerciseRepository) Update(ctx context.Context, exercise *domain.Exercise) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Exercise{}).
		Where("id = ?", exercise.ID).
		Updates(map[string]interface{}{
			"name":       exercise.Name,
			"sets":       exercise.Sets,
			"reps":       exercise.Reps,
			"weight":     exercise.Weight,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SetCompleted flips the completed flag and refreshes the timestamp.
func (r *exerciseRepository) SetCompleted(ctx context.Context, exerciseID uint, completed bool) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Exercise{}).
		Where("id = ?", exerciseID).
		Updates(map[string]interface{}{
			"completed":  completed,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes one exercise.
func (r *exerciseRepository) Delete(ctx context.Context, exerciseID uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Exercise{}, exerciseID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
