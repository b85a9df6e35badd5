package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Class is a named room students enter with a shared access code. There is
// no membership table; knowing the code is the membership.
type Class struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	AccessCode string    `gorm:"size:50;not null" json:"-"`
}

func (c *Class) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
