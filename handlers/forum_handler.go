package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wsulistia/kelasku/database"
	"github.com/wsulistia/kelasku/models"
	"github.com/wsulistia/kelasku/services"
)

type CreatePostRequest struct {
	Content string `json:"content" validate:"required"`
}

// ForumPostEntry is a post joined with its author's display name, newest
// first.
type ForumPostEntry struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

// PostToForum stores the post and the "new discussion" notification in one
// transaction; a feed line never appears without its post.
func PostToForum(c *fiber.Ctx) error {
	var class models.Class
	if err := findByParam(c, &class, "classId"); err != nil {
		return lookupError(c, err, "Class not found")
	}

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Post content cannot be empty"})
	}

	post := models.ForumPost{
		ClassID: class.ID,
		UserID:  currentUserID(c),
		Content: content,
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		message := fmt.Sprintf("New discussion by %s", currentDisplayName(c))
		_, err := services.PostClassNotification(tx, class.ID, message)
		return err
	})
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func ListForumPosts(c *fiber.Ctx) error {
	var class models.Class
	if err := findByParam(c, &class, "classId"); err != nil {
		return lookupError(c, err, "Class not found")
	}

	var entries []ForumPostEntry
	err := database.DB.Model(&models.ForumPost{}).
		Select("forum_posts.id, forum_posts.content, forum_posts.created_at, users.display_name").
		Joins("JOIN users ON users.id = forum_posts.user_id").
		Where("forum_posts.class_id = ?", class.ID).
		Order("forum_posts.created_at desc").
		Scan(&entries).Error
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}

	return c.JSON(entries)
}
