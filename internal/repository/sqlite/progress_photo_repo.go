package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/domain"
	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/repository"
)

// progressPhotoRepository implements repository.ProgressPhotoRepository
type progressPhotoRepository struct {
	db *gorm.DB
}

// NewProgressPhotoRepository creates a new ProgressPhoto repository.
func NewProgressPhotoRepository(db *gorm.DB) repository.ProgressPhotoRepository {
	return &progressPhotoRepository{db: db}
}

func (r *progressPhotoRepository) Create(ctx context.Context, photo *domain.ProgressPhoto) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *progressPhotoRepository) GetByWorkoutID(ctx context.Context, workoutID uint) ([]domain.ProgressPhoto, error) {
	var photos []domain.ProgressPhoto
	err := r.db.WithContext(ctx).
		Where("workout_id = ?", workoutID).
		Order("date DESC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// GetOwned retrieves a photo only if its workout belongs to the given user.
func (r *progressPhotoRepository) GetOwned(ctx context.Context, userID, photoID uint) (*domain.ProgressPhoto, error) {
	var photo domain.ProgressPhoto
	err := r.db.WithContext(ctx).
		Joins("JOIN workouts ON workouts.id = progress_photos.workout_id").
		Where("progress_photos.id = ? AND workouts.user_id = ?", photoID, userID).
		First(&photo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &photo, nil
}

func (r *progressPhotoRepository) Delete(ctx context.Context, photoID uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.ProgressPhoto{}, photoID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
