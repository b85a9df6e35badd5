package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question is a five-option multiple-choice item. CorrectOption holds the
// answer key letter and must never reach students; handlers project
// questions through a student view before returning them.
type Question struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TestID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_questions_test_position" json:"test_id"`
	Text          string    `gorm:"type:text;not null" json:"text"`
	OptionA       string    `gorm:"type:text" json:"option_a"`
	OptionB       string    `gorm:"type:text" json:"option_b"`
	OptionC       string    `gorm:"type:text" json:"option_c"`
	OptionD       string    `gorm:"type:text" json:"option_d"`
	OptionE       string    `gorm:"type:text" json:"option_e"`
	CorrectOption string    `gorm:"size:1;not null" json:"correct_option"`
	Position      int       `gorm:"not null;uniqueIndex:idx_questions_test_position" json:"position"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
