package repository

import (
	"context"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/domain"
)

// Error constants for the repository layer. Services translate these into
// their own domain-worded errors.
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// Delete removes the user and everything they own (workouts and their
	// children, personal bests) in one transaction.
	Delete(ctx context.Context, id uint) error
}

// WorkoutRepository defines the interface for interacting with workout
// aggregates. Reads are scoped by the owning user's ID.
type WorkoutRepository interface {
	// Create inserts the workout row and every exercise attached to it
	// atomically; either all rows are committed or none are.
	Create(ctx context.Context, workout *domain.Workout) error
	GetByID(ctx context.Context, userID, workoutID uint) (*domain.Workout, error)
	// GetDetailed also loads personal bests and progress photos.
	GetDetailed(ctx context.Context, userID, workoutID uint) (*domain.Workout, error)
	GetByUserID(ctx context.Context, userID uint) ([]domain.Workout, error)
	Update(ctx context.Context, userID uint, workout *domain.Workout) error
	// Delete cascades to exercises, personal bests and progress photos that
	// reference the workout.
	Delete(ctx context.Context, userID, workoutID uint) error
}

// ExerciseRepository defines the interface for single-exercise lifecycle
// operations, always scoped to the parent workout's owner.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) error
	GetOwned(ctx context.Context, userID, exerciseID uint) (*domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	SetCompleted(ctx context.Context, exerciseID uint, completed bool) error
	Delete(ctx context.Context, exerciseID uint) error
}

// PersonalBestRepository defines the interface for the append-only record
// history.
type PersonalBestRepository interface {
	// RecordIfBest inserts pb when no entry exists for the (user, exercise
	// name) pair or when pb.Weight strictly exceeds the current maximum.
	// The find-max and the insert run in one transaction. Returns true when
	// a row was inserted.
	RecordIfBest(ctx context.Context, pb *domain.PersonalBest) (bool, error)
	GetByUserID(ctx context.Context, userID uint) ([]domain.PersonalBest, error)
	// GetBest returns the maximum-weight entry for the pair.
	GetBest(ctx context.Context, userID uint, exerciseName string) (*domain.PersonalBest, error)
	Delete(ctx context.Context, userID, id uint) error
}

// ProgressPhotoRepository defines the interface for photo metadata rows.
// The image bytes live in object storage.
type ProgressPhotoRepository interface {
	Create(ctx context.Context, photo *domain.ProgressPhoto) error
	GetByWorkoutID(ctx context.Context, workoutID uint) ([]domain.ProgressPhoto, error)
	GetOwned(ctx context.Context, userID, photoID uint) (*domain.ProgressPhoto, error)
	Delete(ctx context.Context, photoID uint) error
}
