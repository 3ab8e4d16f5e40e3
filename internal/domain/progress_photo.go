package domain

import (
	"time"
)

// ProgressPhoto stores the public URL of an image uploaded against a
// workout. The file itself lives in object storage; ObjectKey is the
// bucket key used for deletion and is never serialized.
type ProgressPhoto struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	WorkoutID uint      `gorm:"index;not null" json:"workoutId"`
	ImageURL  string    `gorm:"not null" json:"imageUrl"`
	ObjectKey string    `json:"-"`
	Date      time.Time `json:"date"`
}
