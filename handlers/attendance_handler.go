package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wsulistia/kelasku/database"
	"github.com/wsulistia/kelasku/models"
)

// AttendanceEntry is one line of the recent check-ins panel: who, when.
type AttendanceEntry struct {
	DisplayName string    `json:"display_name"`
	Timestamp   time.Time `json:"timestamp"`
}

// RecordAttendance appends a check-in row. There is no dedup window; every
// tap of the button is its own row.
func RecordAttendance(c *fiber.Ctx) error {
	var class models.Class
	if err := findByParam(c, &class, "classId"); err != nil {
		return lookupError(c, err, "Class not found")
	}

	record := models.AttendanceRecord{
		ClassID:   class.ID,
		UserID:    currentUserID(c),
		Timestamp: time.Now(),
	}
	if err := database.DB.Create(&record).Error; err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

func ListRecentAttendance(c *fiber.Ctx) error {
	var class models.Class
	if err := findByParam(c, &class, "classId"); err != nil {
		return lookupError(c, err, "Class not found")
	}

	limit := c.QueryInt("limit", 20)
	if limit <= 0 {
		limit = 20
	}

	var entries []AttendanceEntry
	err := database.DB.Model(&models.AttendanceRecord{}).
		Select("attendance_records.timestamp, users.display_name").
		Joins("JOIN users ON users.id = attendance_records.user_id").
		Where("attendance_records.class_id = ?", class.ID).
		Order("attendance_records.timestamp desc").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}

	return c.JSON(entries)
}
