package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Answer records what a student chose for one question of one attempt. An
// attempt carries exactly one Answer per question the test had at
// submission time; skipped questions keep an empty ChosenOption.
type Answer struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AttemptID    uuid.UUID `gorm:"type:uuid;not null;index" json:"attempt_id"`
	QuestionID   uuid.UUID `gorm:"type:uuid;not null" json:"question_id"`
	ChosenOption string    `gorm:"type:text" json:"chosen_option"`
}

func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
