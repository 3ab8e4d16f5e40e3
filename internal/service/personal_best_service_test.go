package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/domain"
	sqliterepo "github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/repository/sqlite"
)

func newPersonalBestService(db *gorm.DB) PersonalBestService {
	return NewPersonalBestService(sqliterepo.NewPersonalBestRepository(db), sqliterepo.NewWorkoutRepository(db))
}

// seedWorkout creates a minimal valid workout to use as provenance.
func seedWorkout(t *testing.T, db *gorm.DB, userID uint) *domain.Workout {
	t.Helper()
	svc := newWorkoutService(db)
	workout, err := svc.CreateWorkout(testCtx, userID, CreateWorkoutInput{
		Name:      "Session",
		Exercises: []ExerciseInput{{Name: "Bench Press", Sets: 3, Reps: 5, Weight: ptr(100.0)}},
	})
	require.NoError(t, err)
	return workout
}

func TestRecordIfBestFirstEntryAlwaysCounts(t *testing.T) {
	db := setupTestDB(t)
	svc := newPersonalBestService(db)
	user := createTestUser(t, db, "firstpb")
	w1 := seedWorkout(t, db, user.ID)

	pb, improved, err := svc.RecordIfBest(testCtx, user.ID, w1.ID, "Bench Press", 100, 5)
	require.NoError(t, err)
	assert.True(t, improved)
	require.NotNil(t, pb)
	assert.Equal(t, 100.0, pb.Weight)
	assert.Equal(t, 5, pb.Reps)
	assert.NotZero(t, pb.ID)
}

func TestRecordIfBestRejectsNonImprovement(t *testing.T) {
	db := setupTestDB(t)
	svc := newPersonalBestService(db)
	user := createTestUser(t, db, "noimprove")
	w1 := seedWorkout(t, db, user.ID)
	w2 := seedWorkout(t, db, user.ID)

	_, improved, err := svc.RecordIfBest(testCtx, user.ID, w1.ID, "Bench Press", 100, 5)
	require.NoError(t, err)
	require.True(t, improved)

	// Lower weight: expected no-op, not an error.
	pb, improved, err := svc.RecordIfBest(testCtx, user.ID, w2.ID, "Bench Press", 90, 5)
	require.NoError(t, err)
	assert.False(t, improved)
	assert.Nil(t, pb)

	// Equal weight is not an improvement either; the comparison is strict.
	pb, improved, err = svc.RecordIfBest(testCtx, user.ID, w2.ID, "Bench Press", 100, 12)
	require.NoError(t, err)
	assert.False(t, improved)
	assert.Nil(t, pb)

	var count int64
	require.NoError(t, db.Model(&domain.PersonalBest{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "non-improvements must not insert rows")
}

func TestRecordIfBestAppendsWithoutDeletingHistory(t *testing.T) {
	db := setupTestDB(t)
	svc := newPersonalBestService(db)
	user := createTestUser(t, db, "history")
	w1 := seedWorkout(t, db, user.ID)
	w3 := seedWorkout(t, db, user.ID)

	_, improved, err := svc.RecordIfBest(testCtx, user.ID, w1.ID, "Bench Press", 100, 5)
	require.NoError(t, err)
	require.True(t, improved)

	pb, improved, err := svc.RecordIfBest(testCtx, user.ID, w3.ID, "Bench Press", 110, 3)
	require.NoError(t, err)
	assert.True(t, improved, "higher weight at lower reps still counts; reps are never compared")
	assert.Equal(t, 110.0, pb.Weight)

	// Both entries remain: superseded records are never deleted.
	var weights []float64
	require.NoError(t, db.Model(&domain.PersonalBest{}).
		Where("user_id = ? AND exercise_name = ?", user.ID, "Bench Press").
		Order("weight ASC").Pluck("weight", &weights).Error)
	assert.Equal(t, []float64{100, 110}, weights)
}

func TestRecordIfBestTracksExercisesIndependently(t *testing.T) {
	db := setupTestDB(t)
	svc := newPersonalBestService(db)
	user := createTestUser(t, db, "perexercise")
	w1 := seedWorkout(t, db, user.ID)

	_, improved, err := svc.RecordIfBest(testCtx, user.ID, w1.ID, "Bench Press", 100, 5)
	require.NoError(t, err)
	require.True(t, improved)

	// A different exercise name is a fresh group.
	_, improved, err = svc.RecordIfBest(testCtx, user.ID, w1.ID, "Squat", 60, 5)
	require.NoError(t, err)
	assert.True(t, improved)

	// And a different user is too.
	other := createTestUser(t, db, "otherlifter")
	wOther := seedWorkout(t, db, other.ID)
	_, improved, err = svc.RecordIfBest(testCtx, other.ID, wOther.ID, "Bench Press", 50, 5)
	require.NoError(t, err)
	assert.True(t, improved)
}

func TestRecordIfBestRequiresOwnedWorkout(t *testing.T) {
	db := setupTestDB(t)
	svc := newPersonalBestService(db)
	user := createTestUser(t, db, "provenance")
	stranger := createTestUser(t, db, "stranger")
	w1 := seedWorkout(t, db, user.ID)

	_, _, err := svc.RecordIfBest(testCtx, user.ID, 9999, "Bench Press", 100, 5)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)

	_, _, err = svc.RecordIfBest(testCtx, stranger.ID, w1.ID, "Bench Press", 100, 5)
	assert.ErrorIs(t, err, ErrWorkoutNotFound, "a workout owned by someone else is invisible")
}

func TestRecordIfBestValidatesInput(t *testing.T) {
	db := setupTestDB(t)
	svc := newPersonalBestService(db)
	user := createTestUser(t, db, "pbvalidate")
	w1 := seedWorkout(t, db, user.ID)

	_, _, err := svc.RecordIfBest(testCtx, user.ID, w1.ID, "", 100, 5)
	assert.ErrorIs(t, err, ErrPersonalBestValidation)
	_, _, err = svc.RecordIfBest(testCtx, user.ID, w1.ID, "Bench Press", 0, 5)
	assert.ErrorIs(t, err, ErrPersonalBestValidation)
	_, _, err = svc.RecordIfBest(testCtx, user.ID, w1.ID, "Bench Press", 100, 0)
	assert.ErrorIs(t, err, ErrPersonalBestValidation)
}

func TestListPersonalBestsMostRecentFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := newPersonalBestService(db)
	user := createTestUser(t, db, "pblist")
	w1 := seedWorkout(t, db, user.ID)

	// Insert directly so the dates are controlled and out of order.
	entries := []domain.PersonalBest{
		{UserID: user.ID, WorkoutID: w1.ID, ExerciseName: "Bench Press", Weight: 100, Reps: 5, Date: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)},
		{UserID: user.ID, WorkoutID: w1.ID, ExerciseName: "Squat", Weight: 140, Reps: 3, Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		{UserID: user.ID, WorkoutID: w1.ID, ExerciseName: "Bench Press", Weight: 105, Reps: 4, Date: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)},
	}
	for i := range entries {
		require.NoError(t, db.Create(&entries[i]).Error)
	}

	bests, err := svc.ListPersonalBests(testCtx, user.ID)
	require.NoError(t, err)
	require.Len(t, bests, 3, "history is not deduplicated by exercise name")
	for i := 1; i < len(bests); i++ {
		assert.False(t, bests[i].Date.After(bests[i-1].Date))
	}
}

func TestGetBestForExerciseReturnsMaxWeight(t *testing.T) {
	db := setupTestDB(t)
	svc := newPersonalBestService(db)
	user := createTestUser(t, db, "pbbest")
	w1 := seedWorkout(t, db, user.ID)

	for _, weight := range []float64{100, 110, 105} {
		_, _, err := svc.RecordIfBest(testCtx, user.ID, w1.ID, "Deadlift", weight, 3)
		require.NoError(t, err)
	}

	best, err := svc.GetBestForExercise(testCtx, user.ID, "Deadlift")
	require.NoError(t, err)
	assert.Equal(t, 110.0, best.Weight)

	_, err = svc.GetBestForExercise(testCtx, user.ID, "Snatch")
	assert.ErrorIs(t, err, ErrPersonalBestNotFound)
}

func TestDeletePersonalBest(t *testing.T) {
	db := setupTestDB(t)
	svc := newPersonalBestService(db)
	user := createTestUser(t, db, "pbdelete")
	w1 := seedWorkout(t, db, user.ID)

	pb, improved, err := svc.RecordIfBest(testCtx, user.ID, w1.ID, "Bench Press", 100, 5)
	require.NoError(t, err)
	require.True(t, improved)

	require.NoError(t, svc.DeletePersonalBest(testCtx, user.ID, pb.ID))
	assert.ErrorIs(t, svc.DeletePersonalBest(testCtx, user.ID, pb.ID), ErrPersonalBestNotFound)

	// After deleting the only entry the next submission counts again.
	_, improved, err = svc.RecordIfBest(testCtx, user.ID, w1.ID, "Bench Press", 80, 5)
	require.NoError(t, err)
	assert.True(t, improved)
}
