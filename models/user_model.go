package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a user can hold. The role is fixed at registration and never
// changes afterwards.
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username     string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	DisplayName  string    `gorm:"size:255;not null" json:"display_name"`
	Role         string    `gorm:"size:20;not null;default:'student'" json:"role"`
	PasswordHash string    `gorm:"not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
