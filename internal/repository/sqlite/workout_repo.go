package sqlite

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/domain"
	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/repository"
)

// workoutRepository implements repository.WorkoutRepository
type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository creates a new Workout repository.
func NewWorkoutRepository(db *gorm.DB) repository.WorkoutRepository {
	return &workoutRepository{db: db}
}

// Create inserts the workout and all of its exercises in a single
// transaction. Any failure rolls the whole aggregate back; a workout row
// without its exercises must never be observable.
func (r *workoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exercises := workout.Exercises
		workout.Exercises = nil
		if err := tx.Create(workout).Error; err != nil {
			return err
		}
		for i := range exercises {
			exercises[i].WorkoutID = workout.ID
			if err := tx.Create(&exercises[i]).Error; err != nil {
				return err
			}
		}
		workout.Exercises = exercises
		return nil
	})
}

// GetByID retrieves one workout with its exercises, scoped to the owner.
func (r *workoutRepository) GetByID(ctx context.Context, userID, workoutID uint) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.db.WithContext(ctx).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("exercises.id ASC") }).
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// GetDetailed retrieves one workout with exercises, personal bests and
// progress photos attached.
func (r *workoutRepository) GetDetailed(ctx context.Context, userID, workoutID uint) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.db.WithContext(ctx).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("exercises.id ASC") }).
		Preload("PersonalBests").
		Preload("ProgressPhotos").
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// GetByUserID retrieves all workouts for a user, most recent date first.
func (r *workoutRepository) GetByUserID(ctx context.Context, userID uint) ([]domain.Workout, error) {
	var workouts []domain.Workout
	err := r.db.WithContext(ctx).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("exercises.id ASC") }).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

// Update applies name/date changes to the workout row only. Child exercises
// are untouched.
func (r *workoutRepository) Update(ctx context.Context, userID uint, workout *domain.Workout) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Workout{}).
		Where("id = ? AND user_id = ?", workout.ID, userID).
		Updates(map[string]interface{}{
			"name":       workout.Name,
			"date":       workout.Date,
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

// Delete removes the workout together with its exercises, personal bests
// and progress photos. The cleanup is one transaction so a concurrent
// reader never sees a half-deleted aggregate, and orphaned child rows
// cannot survive the call.
func (r *workoutRepository) Delete(ctx context.Context, userID, workoutID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", workoutID, userID).Delete(&domain.Workout{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		if err := tx.Where("workout_id = ?", workoutID).Delete(&domain.Exercise{}).Error; err != nil {
			return err
		}
		if err := tx.Where("workout_id = ?", workoutID).Delete(&domain.PersonalBest{}).Error; err != nil {
			return err
		}
		return tx.Where("workout_id = ?", workoutID).Delete(&domain.ProgressPhoto{}).Error
	})
}
