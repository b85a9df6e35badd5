package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/wsulistia/kelasku/database"
	"github.com/wsulistia/kelasku/models"
	"github.com/wsulistia/kelasku/utils"
)

type CreateClassRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	AccessCode string `json:"access_code" validate:"max=50"`
}

type EnterClassRequest struct {
	AccessCode string `json:"access_code"`
}

// ClassResponse is the listing shape. It never carries the access code;
// CreateClass returns the code once so the teacher can share it out of
// band.
type ClassResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func classResponse(class models.Class) ClassResponse {
	return ClassResponse{ID: class.ID.String(), Name: class.Name}
}

func CreateClass(c *fiber.Ctx) error {
	var req CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Class name cannot be empty"})
	}

	// the code is stored verbatim; entry later compares it byte for byte
	code := req.AccessCode
	if strings.TrimSpace(code) == "" {
		code = utils.GenerateAccessCode()
	}

	class := models.Class{Name: name, AccessCode: code}
	if err := database.DB.Create(&class).Error; err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":          class.ID.String(),
		"name":        class.Name,
		"access_code": class.AccessCode,
	})
}

func ListClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.DB.Find(&classes).Error; err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}

	response := make([]ClassResponse, len(classes))
	for i, class := range classes {
		response[i] = classResponse(class)
	}
	return c.JSON(response)
}

// EnterClass checks the access code against an exact, case-sensitive match.
// Nothing is persisted; the client holds the entered class and re-sends the
// class id on subsequent calls.
func EnterClass(c *fiber.Ctx) error {
	var class models.Class
	if err := findByParam(c, &class, "classId"); err != nil {
		return lookupError(c, err, "Class not found")
	}

	var req EnterClassRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
	}

	if req.AccessCode != class.AccessCode {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Wrong access code"})
	}

	return c.JSON(classResponse(class))
}
