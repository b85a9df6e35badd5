package services

import (
	"github.com/google/uuid"
	"github.com/wsulistia/kelasku/models"
	"gorm.io/gorm"
)

// PostClassNotification appends a broadcast line to a class's feed. It runs
// on the caller's handle so forum posts and test submissions can commit
// their notification atomically with the row that triggered it.
func PostClassNotification(tx *gorm.DB, classID uuid.UUID, message string) (models.Notification, error) {
	notification := models.Notification{
		ClassID: classID,
		Message: message,
	}
	if err := tx.Create(&notification).Error; err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}
