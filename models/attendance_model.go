package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRecord is one check-in tap. The log is append-only and a user
// may check in to the same class any number of times.
type AttendanceRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClassID   uuid.UUID `gorm:"type:uuid;not null;index" json:"class_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
}

func (a *AttendanceRecord) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
