package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Material types the content registry accepts. The server never interprets
// the referenced bytes; rendering is entirely the frontend's job.
const (
	MaterialTypePDF           = "pdf"
	MaterialTypeFlipbook      = "flipbook"
	MaterialTypeLiveworksheet = "liveworksheets"
	MaterialTypeVideo         = "video"
	MaterialTypeIframe        = "iframe"
)

// MaterialTypes lists every accepted material type.
var MaterialTypes = []string{
	MaterialTypePDF,
	MaterialTypeFlipbook,
	MaterialTypeLiveworksheet,
	MaterialTypeVideo,
	MaterialTypeIframe,
}

// Material points at content either by FilePath (an uploaded file) or by
// ExternalURL, depending on the type. An empty AccessCode means the
// material is open to everyone in the class.
type Material struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClassID     uuid.UUID `gorm:"type:uuid;not null;index" json:"class_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	AccessCode  string    `gorm:"size:50" json:"-"`
	FilePath    string    `gorm:"size:512" json:"file_path,omitempty"`
	ExternalURL string    `gorm:"size:512" json:"external_url,omitempty"`
	Type        string    `gorm:"size:20;not null" json:"type"`
	UploadedBy  uuid.UUID `gorm:"type:uuid;not null" json:"uploaded_by"`
	UploadedAt  time.Time `gorm:"not null" json:"uploaded_at"`
}

func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
