package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/domain"
)

func createWorkoutPayload() map[string]interface{} {
	return map[string]interface{}{
		"name": "Push Day",
		"exercises": []map[string]interface{}{
			{"name": "Bench Press", "sets": 3, "reps": 8, "weight": 80},
			{"name": "Overhead Press", "sets": 3, "reps": 10, "weight": 40},
		},
	}
}

func TestCreateWorkoutEndpoint(t *testing.T) {
	router, db := setupTestRouter(t, nil)
	token := registerAndLogin(t, router, "creator")

	w := doJSON(t, router, http.MethodPost, "/api/v1/workouts", createWorkoutPayload(), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created domain.Workout
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Push Day", created.Name)
	require.Len(t, created.Exercises, 2)
	assert.Equal(t, "Bench Press", created.Exercises[0].Name)

	var exerciseCount int64
	require.NoError(t, db.Model(&domain.Exercise{}).Where("workout_id = ?", created.ID).Count(&exerciseCount).Error)
	assert.EqualValues(t, 2, exerciseCount)
}

func TestCreateWorkoutEndpointRejectsEmptyExercises(t *testing.T) {
	router, db := setupTestRouter(t, nil)
	token := registerAndLogin(t, router, "emptybody")

	payload := map[string]interface{}{"name": "Leg Day", "exercises": []map[string]interface{}{}}
	w := doJSON(t, router, http.MethodPost, "/api/v1/workouts", payload, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&domain.Workout{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestWorkoutEndpointsRequireAuth(t *testing.T) {
	router, _ := setupTestRouter(t, nil)

	w := doJSON(t, router, http.MethodPost, "/api/v1/workouts", createWorkoutPayload(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = doJSON(t, router, http.MethodGet, "/api/v1/workouts", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWorkoutsAreInvisibleToOtherUsers(t *testing.T) {
	router, _ := setupTestRouter(t, nil)
	ownerToken := registerAndLogin(t, router, "handlerowner")
	intruderToken := registerAndLogin(t, router, "handlerintruder")

	w := doJSON(t, router, http.MethodPost, "/api/v1/workouts", createWorkoutPayload(), ownerToken)
	require.Equal(t, http.StatusCreated, w.Code)
	var created domain.Workout
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/v1/workouts/%d", created.ID)
	w = doJSON(t, router, http.MethodGet, path, nil, intruderToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, router, http.MethodDelete, path, nil, intruderToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Still there for the owner.
	w = doJSON(t, router, http.MethodGet, path, nil, ownerToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteWorkoutEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t, nil)
	token := registerAndLogin(t, router, "deleter")

	w := doJSON(t, router, http.MethodPost, "/api/v1/workouts", createWorkoutPayload(), token)
	require.Equal(t, http.StatusCreated, w.Code)
	var created domain.Workout
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/v1/workouts/%d", created.ID)
	w = doJSON(t, router, http.MethodDelete, path, nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, router, http.MethodGet, path, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordPersonalBestEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t, nil)
	token := registerAndLogin(t, router, "pbrecorder")

	w := doJSON(t, router, http.MethodPost, "/api/v1/workouts", createWorkoutPayload(), token)
	require.Equal(t, http.StatusCreated, w.Code)
	var workout domain.Workout
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &workout))

	record := map[string]interface{}{
		"workoutId":    workout.ID,
		"exerciseName": "Bench Press",
		"weight":       100,
		"reps":         5,
	}
	w = doJSON(t, router, http.MethodPost, "/api/v1/personal-bests", record, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp RecordPersonalBestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Improved)
	require.NotNil(t, resp.PersonalBest)
	assert.Equal(t, 100.0, resp.PersonalBest.Weight)

	// A lower weight is a 200 with improved=false, not an error.
	record["weight"] = 90
	w = doJSON(t, router, http.MethodPost, "/api/v1/personal-bests", record, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp = RecordPersonalBestResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Improved)
	assert.Nil(t, resp.PersonalBest)

	w = doJSON(t, router, http.MethodGet, "/api/v1/personal-bests/best?exercise=Bench+Press", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var best domain.PersonalBest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &best))
	assert.Equal(t, 100.0, best.Weight)
}
