package domain

import (
	"time"
)

// WeightUnit is the unit a user prefers for logging weights.
type WeightUnit string

const (
	UnitKg WeightUnit = "kg"
	UnitLb WeightUnit = "lb"
)

// User represents an account in the system. Preference fields seed the
// client's defaults when logging a new workout.
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"` // Never expose this via JSON
	Gender       string     `json:"gender,omitempty"`
	Age          int        `json:"age,omitempty"`
	Weight       float64    `json:"weight,omitempty"`
	Height       float64    `json:"height,omitempty"`
	WeightUnit   WeightUnit `gorm:"default:kg" json:"weightUnit"`
	DefaultSets  int        `gorm:"default:3" json:"defaultSets"`
	DefaultReps  int        `gorm:"default:10" json:"defaultReps"`
	RestTimerSec int        `gorm:"default:60" json:"restTimerSec"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	// Deleting a user removes everything they own.
	Workouts      []Workout      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PersonalBests []PersonalBest `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
