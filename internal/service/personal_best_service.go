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
	ErrPersonalBestNotFound   = errors.New("personal best not found")
	ErrPersonalBestValidation = errors.New("personal best requires an exercise name, a positive weight and positive reps")
)

// PersonalBestService decides whether a logged performance supersedes the
// user's record history for an exercise. History is append-only: nothing is
// deleted or overwritten on supersession, so the current best is always
// the maximum-weight entry in its (user, exercise name) group.
//
// RecordIfBest is not idempotent: submitting the same improving weight
// twice appends two entries. Callers that retry must deduplicate, e.g. via
// the idempotency middleware on the HTTP route.
type PersonalBestService interface {
	// RecordIfBest returns the created entry and true when the submission
	// set a new record, or (nil, false) when it was not an improvement.
	// "Not an improvement" is an expected outcome, not an error.
	RecordIfBest(ctx context.Context, userID, workoutID uint, exerciseName string, weight float64, reps int) (*domain.PersonalBest, bool, error)
	ListPersonalBests(ctx context.Context, userID uint) ([]domain.PersonalBest, error)
	GetBestForExercise(ctx context.Context, userID uint, exerciseName string) (*domain.PersonalBest, error)
	DeletePersonalBest(ctx context.Context, userID, id uint) error
}

// personalBestService implements the PersonalBestService interface.
type personalBestService struct {
	personalBestRepo repository.PersonalBestRepository
	workoutRepo      repository.WorkoutRepository
}

// NewPersonalBestService creates a new instance of personalBestService.
func NewPersonalBestService(personalBestRepo repository.PersonalBestRepository, workoutRepo repository.WorkoutRepository) PersonalBestService {
	return &personalBestService{
		personalBestRepo: personalBestRepo,
		workoutRepo:      workoutRepo,
	}
}

// RecordIfBest validates the submission, confirms the provenance workout
// belongs to the user, and delegates the compare-and-insert to the
// repository, which runs it in one transaction. The comparison is on
// weight alone; reps are carried for display but never compared.
func (s *personalBestService) RecordIfBest(ctx context.Context, userID, workoutID uint, exerciseName string, weight float64, reps int) (*domain.PersonalBest, bool, error) {
	if exerciseName == "" || weight <= 0 || reps <= 0 {
		return nil, false, ErrPersonalBestValidation
	}
	if _, err := s.workoutRepo.GetByID(ctx, userID, workoutID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, ErrWorkoutNotFound
		}
		return nil, false, err
	}

	pb := &domain.PersonalBest{
		UserID:       userID,
		WorkoutID:    workoutID,
		ExerciseName: exerciseName,
		Weight:       weight,
		Reps:         reps,
		Date:         time.Now().UTC(),
	}
	improved, err := s.personalBestRepo.RecordIfBest(ctx, pb)
	if err != nil {
		return nil, false, err
	}
	if !improved {
		return nil, false, nil
	}
	return pb, true, nil
}

// ListPersonalBests returns the user's full record history, most recent
// first. Entries are not deduplicated by exercise name.
func (s *personalBestService) ListPersonalBests(ctx context.Context, userID uint) ([]domain.PersonalBest, error) {
	return s.personalBestRepo.GetByUserID(ctx, userID)
}

// GetBestForExercise returns the current best for the pair.
func (s *personalBestService) GetBestForExercise(ctx context.Context, userID uint, exerciseName string) (*domain.PersonalBest, error) {
	if exerciseName == "" {
		return nil, ErrPersonalBestValidation
	}
	best, err := s.personalBestRepo.GetBest(ctx, userID, exerciseName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPersonalBestNotFound
		}
		return nil, err
	}
	return best, nil
}

// DeletePersonalBest removes one history entry unconditionally.
func (s *personalBestService) DeletePersonalBest(ctx context.Context, userID, id uint) error {
	err := s.personalBestRepo.Delete(ctx, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPersonalBestNotFound
	}
	return err
}
