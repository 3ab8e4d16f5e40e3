package domain

import (
	"time"
)

// Workout is a single training session owned by one user. A workout and its
// exercises form one consistency boundary: they are created together in a
// single transaction and a workout must contain at least one exercise.
type Workout struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Name      string    `gorm:"not null" json:"name"`
	Date      time.Time `gorm:"index" json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Exercises      []Exercise      `gorm:"constraint:OnDelete:CASCADE" json:"exercises,omitempty"`
	PersonalBests  []PersonalBest  `gorm:"constraint:OnDelete:CASCADE" json:"personalBests,omitempty"`
	ProgressPhotos []ProgressPhoto `gorm:"constraint:OnDelete:CASCADE" json:"progressPhotos,omitempty"`
}
