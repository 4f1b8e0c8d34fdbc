package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is an entry in the company's service catalog.
type Service struct {
	ID          string    `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	Details     string    `json:"details" gorm:"type:text"`
	ImageURL    string    `json:"image_url,omitempty" gorm:"size:512"`
	IsActive    bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate sets a UUID before creating the record.
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
