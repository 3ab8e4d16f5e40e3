package domain

import (
	"time"
)

// Exercise is one logged movement inside a workout. It lives and dies with
// its parent workout but is mutated independently (edit, toggle complete,
// delete). The check constraints back up service-level validation so a bad
// row aborts the surrounding transaction instead of being committed.
type Exercise struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	WorkoutID uint      `gorm:"index;not null" json:"workoutId"`
	Name      string    `gorm:"not null;check:name <> ''" json:"name"`
	Sets      int       `gorm:"not null;check:sets > 0" json:"sets"`
	Reps      int       `gorm:"not null;check:reps > 0" json:"reps"`
	Weight    *float64  `gorm:"check:weight >= 0" json:"weight,omitempty"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
