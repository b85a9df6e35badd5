package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Test is a pre-test or post-test attached to a class. IsPretest is purely
// a label; both kinds score the same way.
type Test struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClassID   uuid.UUID `gorm:"type:uuid;not null;index" json:"class_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	IsPretest bool      `gorm:"not null;default:false" json:"is_pretest"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *Test) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
