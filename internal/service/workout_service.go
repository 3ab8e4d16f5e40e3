package service

import (
	"context"
	"errors"
	"time"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/domain"
	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/repository"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound    = errors.New("workout not found")
	ErrExerciseNotFound   = errors.New("exercise not found")
	ErrWorkoutValidation  = errors.New("workout must contain at least one exercise")
	ErrWorkoutNameMissing = errors.New("workout name is required")
	ErrExerciseValidation = errors.New("exercise requires a name, positive sets and reps, and a non-negative weight")
)

// ExerciseInput is one exercise entry in a workout creation request.
type ExerciseInput struct {
	Name   string
	Sets   int
	Reps   int
	Weight *float64
}

// CreateWorkoutInput carries everything needed to create a workout
// aggregate. Date defaults to the current time when nil.
type CreateWorkoutInput struct {
	Name      string
	Date      *time.Time
	Exercises []ExerciseInput
}

// WorkoutPatch holds partial updates for a workout; nil fields are left
// unchanged.
type WorkoutPatch struct {
	Name *string
	Date *time.Time
}

// ExercisePatch holds partial updates for an exercise; nil fields are left
// unchanged.
type ExercisePatch struct {
	Name   *string
	Sets   *int
	Reps   *int
	Weight *float64
}

// WorkoutService manages the workout aggregate: a workout plus its
// exercises, treated as one consistency boundary.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, userID uint, input CreateWorkoutInput) (*domain.Workout, error)
	GetWorkoutsByUser(ctx context.Context, userID uint) ([]domain.Workout, error)
	GetWorkoutByID(ctx context.Context, userID, workoutID uint) (*domain.Workout, error)
	UpdateWorkout(ctx context.Context, userID, workoutID uint, patch WorkoutPatch) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, userID, workoutID uint) error

	AddExercise(ctx context.Context, userID, workoutID uint, input ExerciseInput) (*domain.Exercise, error)
	UpdateExercise(ctx context.Context, userID, exerciseID uint, patch ExercisePatch) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, userID, exerciseID uint) error
	SetExerciseCompleted(ctx context.Context, userID, exerciseID uint, completed bool) (*domain.Exercise, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo  repository.WorkoutRepository
	exerciseRepo repository.ExerciseRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, exerciseRepo repository.ExerciseRepository) WorkoutService {
	return &workoutService{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
	}
}

// CreateWorkout validates the aggregate and persists it atomically. Either
// the workout and every exercise are committed, or nothing is.
func (s *workoutService) CreateWorkout(ctx context.Context, userID uint, input CreateWorkoutInput) (*domain.Workout, error) {
	if input.Name == "" {
		return nil, ErrWorkoutNameMissing
	}
	if len(input.Exercises) == 0 {
		return nil, ErrWorkoutValidation
	}
	exercises := make([]domain.Exercise, 0, len(input.Exercises))
	for _, in := range input.Exercises {
		if err := validateExerciseInput(in); err != nil {
			return nil, err
		}
		exercises = append(exercises, domain.Exercise{
			Name:      in.Name,
			Sets:      in.Sets,
			Reps:      in.Reps,
			Weight:    in.Weight,
			Completed: false,
		})
	}

	date := time.Now().UTC()
	if input.Date != nil {
		date = *input.Date
	}
	workout := &domain.Workout{
		UserID:    userID,
		Name:      input.Name,
		Date:      date,
		Exercises: exercises,
	}
	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// GetWorkoutsByUser returns the user's workouts with exercises, most
// recent date first.
func (s *workoutService) GetWorkoutsByUser(ctx context.Context, userID uint) ([]domain.Workout, error) {
	return s.workoutRepo.GetByUserID(ctx, userID)
}

// GetWorkoutByID returns one workout hydrated with exercises, personal
// bests and progress photos.
func (s *workoutService) GetWorkoutByID(ctx context.Context, userID, workoutID uint) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetDetailed(ctx, userID, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// UpdateWorkout applies a partial update to the workout row and returns
// the refreshed aggregate.
func (s *workoutService) UpdateWorkout(ctx context.Context, userID, workoutID uint, patch WorkoutPatch) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, userID, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, ErrWorkoutNameMissing
		}
		workout.Name = *patch.Name
	}
	if patch.Date != nil {
		workout.Date = *patch.Date
	}
	if err := s.workoutRepo.Update(ctx, userID, workout); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return s.workoutRepo.GetByID(ctx, userID, workoutID)
}

// DeleteWorkout removes the workout and cascades to everything that
// references it.
func (s *workoutService) DeleteWorkout(ctx context.Context, userID, workoutID uint) error {
	err := s.workoutRepo.Delete(ctx, userID, workoutID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkoutNotFound
	}
	return err
}

// AddExercise appends one exercise to an existing workout.
func (s *workoutService) AddExercise(ctx context.Context, userID, workoutID uint, input ExerciseInput) (*domain.Exercise, error) {
	if err := validateExerciseInput(input); err != nil {
		return nil, err
	}
	// Confirm the workout exists and is owned by this user before writing.
	if _, err := s.workoutRepo.GetByID(ctx, userID, workoutID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	exercise := &domain.Exercise{
		WorkoutID: workoutID,
		Name:      input.Name,
		Sets:      input.Sets,
		Reps:      input.Reps,
		Weight:    input.Weight,
		Completed: false,
	}
	if err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

// UpdateExercise applies a partial update to one exercise.
func (s *workoutService) UpdateExercise(ctx context.Context, userID, exerciseID uint, patch ExercisePatch) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetOwned(ctx, userID, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	if patch.Name != nil {
		exercise.Name = *patch.Name
	}
	if patch.Sets != nil {
		exercise.Sets = *patch.Sets
	}
	if patch.Reps != nil {
		exercise.Reps = *patch.Reps
	}
	if patch.Weight != nil {
		exercise.Weight = patch.Weight
	}
	if err := validateExerciseInput(ExerciseInput{
		Name:   exercise.Name,
		Sets:   exercise.Sets,
		Reps:   exercise.Reps,
		Weight: exercise.Weight,
	}); err != nil {
		return nil, err
	}
	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return s.exerciseRepo.GetOwned(ctx, userID, exerciseID)
}

// DeleteExercise removes one exercise from its workout.
func (s *workoutService) DeleteExercise(ctx context.Context, userID, exerciseID uint) error {
	if _, err := s.exerciseRepo.GetOwned(ctx, userID, exerciseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	err := s.exerciseRepo.Delete(ctx, exerciseID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrExerciseNotFound
	}
	return err
}

// SetExerciseCompleted sets the completed flag directly. There are no
// intermediate states.
func (s *workoutService) SetExerciseCompleted(ctx context.Context, userID, exerciseID uint, completed bool) (*domain.Exercise, error) {
	if _, err := s.exerciseRepo.GetOwned(ctx, userID, exerciseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	if err := s.exerciseRepo.SetCompleted(ctx, exerciseID, completed); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return s.exerciseRepo.GetOwned(ctx, userID, exerciseID)
}

func validateExerciseInput(in ExerciseInput) error {
	if in.Name == "" || in.Sets <= 0 || in.Reps <= 0 {
		return ErrExerciseValidation
	}
	if in.Weight != nil && *in.Weight < 0 {
		return ErrExerciseValidation
	}
	return nil
}
