package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attempt is one scored submission of a test. Attempts are unlimited and
// immutable once written; the score is frozen against the question set as
// it stood at submission time.
type Attempt struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TestID      uuid.UUID `gorm:"type:uuid;not null;index" json:"test_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`
	Score       float64   `gorm:"not null" json:"score"`
}

func (a *Attempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
