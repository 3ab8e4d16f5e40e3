package domain

import (
	"time"
)

// PersonalBest is one entry in a user's append-only record history. The
// grouping key is (UserID, ExerciseName); superseded entries are never
// deleted, so the current best for an exercise is the row with the maximum
// weight in its group. WorkoutID records which session produced the entry.
type PersonalBest struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index:idx_pb_user_exercise;not null" json:"userId"`
	WorkoutID    uint      `gorm:"index;not null" json:"workoutId"`
	ExerciseName string    `gorm:"index:idx_pb_user_exercise;not null" json:"exerciseName"`
	Weight       float64   `gorm:"not null" json:"weight"`
	Reps         int       `gorm:"not null" json:"reps"`
	Date         time.Time `json:"date"`
}
