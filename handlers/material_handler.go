package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wsulistia/kelasku/database"
	"github.com/wsulistia/kelasku/models"
	"github.com/wsulistia/kelasku/storage"
)

type OpenMaterialRequest struct {
	AccessCode string `json:"access_code"`
}

// MaterialResponse hides the content reference until the caller has
// unlocked the material, so listings leak neither file paths nor embed
// URLs of protected content.
type MaterialResponse struct {
	ID          string    `json:"id"`
	ClassID     string    `json:"class_id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Protected   bool      `json:"protected"`
	FilePath    string    `json:"file_path,omitempty"`
	ExternalURL string    `json:"external_url,omitempty"`
	UploadedBy  string    `json:"uploaded_by"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func materialResponse(m models.Material, unlocked bool) MaterialResponse {
	response := MaterialResponse{
		ID:         m.ID.String(),
		ClassID:    m.ClassID.String(),
		Title:      m.Title,
		Type:       m.Type,
		Protected:  m.AccessCode != "",
		UploadedBy: m.UploadedBy.String(),
		UploadedAt: m.UploadedAt,
	}
	if unlocked || m.AccessCode == "" {
		response.FilePath = m.FilePath
		response.ExternalURL = m.ExternalURL
	}
	return response
}

func validMaterialType(t string) bool {
	for _, known := range models.MaterialTypes {
		if t == known {
			return true
		}
	}
	return false
}

// AddMaterial registers content for a class. pdf and flipbook need an
// uploaded file, liveworksheets and iframe need an external URL, video
// takes exactly one of the two.
func AddMaterial(c *fiber.Ctx) error {
	var class models.Class
	if err := findByParam(c, &class, "classId"); err != nil {
		return lookupError(c, err, "Class not found")
	}

	title := strings.TrimSpace(c.FormValue("title"))
	materialType := c.FormValue("type")
	accessCode := c.FormValue("access_code")
	externalURL := strings.TrimSpace(c.FormValue("external_url"))

	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title cannot be empty"})
	}
	if !validMaterialType(materialType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown material type"})
	}

	file, fileErr := c.FormFile("file")
	hasFile := fileErr == nil

	switch materialType {
	case models.MaterialTypePDF, models.MaterialTypeFlipbook:
		if !hasFile {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("%s materials need an uploaded file", materialType),
			})
		}
		externalURL = ""
	case models.MaterialTypeLiveworksheet, models.MaterialTypeIframe:
		if externalURL == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("%s materials need an external URL", materialType),
			})
		}
		hasFile = false
	case models.MaterialTypeVideo:
		if hasFile == (externalURL != "") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "video materials need exactly one of an uploaded file or an external URL",
			})
		}
	}

	var filePath string
	if hasFile {
		ref, err := storage.Files.Save(c.Context(), file)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Failed to store file"})
		}
		filePath = ref
	}

	material := models.Material{
		ClassID:     class.ID,
		Title:       title,
		AccessCode:  accessCode,
		FilePath:    filePath,
		ExternalURL: externalURL,
		Type:        materialType,
		UploadedBy:  currentUserID(c),
		UploadedAt:  time.Now(),
	}
	if err := database.DB.Create(&material).Error; err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}

	return c.Status(fiber.StatusCreated).JSON(materialResponse(material, true))
}

func ListMaterials(c *fiber.Ctx) error {
	var class models.Class
	if err := findByParam(c, &class, "classId"); err != nil {
		return lookupError(c, err, "Class not found")
	}

	query := database.DB.Where("class_id = ?", class.ID)
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}

	var materials []models.Material
	if err := query.Order("uploaded_at asc, id asc").Find(&materials).Error; err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}

	response := make([]MaterialResponse, len(materials))
	for i, m := range materials {
		response[i] = materialResponse(m, false)
	}
	return c.JSON(response)
}

// OpenMaterial re-checks the material's own access code on every call,
// independent of the class-entry check.
func OpenMaterial(c *fiber.Ctx) error {
	var material models.Material
	if err := findByParam(c, &material, "materialId"); err != nil {
		return lookupError(c, err, "Material not found")
	}

	var req OpenMaterialRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
	}

	if material.AccessCode != "" && req.AccessCode != material.AccessCode {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Wrong access code"})
	}

	return c.JSON(materialResponse(material, true))
}
