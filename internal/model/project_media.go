package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Media type values derived from the uploaded file's mime type.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
	MediaTypeFile  = "file"
)

// ProjectMedia is an uploaded image or video attached to a project.
type ProjectMedia struct {
	ID          string    `json:"id" gorm:"type:char(36);primaryKey"`
	ProjectID   string    `json:"project_id" gorm:"type:char(36);index;not null"`
	FileURL     string    `json:"file_url" gorm:"size:512;not null"`
	Mime        string    `json:"mime" gorm:"size:100"`
	MediaType   string    `json:"media_type" gorm:"size:20"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	IsBefore    *bool     `json:"is_before,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate sets a UUID before creating the record.
func (m *ProjectMedia) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MediaTypeFor derives the media type from a mime type.
func MediaTypeFor(mime string) string {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return MediaTypeImage
	case strings.HasPrefix(mime, "video/"):
		return MediaTypeVideo
	default:
		return MediaTypeFile
	}
}
