package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a construction job shown in the public portfolio.
type Project struct {
	ID             string    `json:"id" gorm:"type:char(36);primaryKey"`
	Title          string    `json:"title" gorm:"size:255;not null;index"`
	Description    string    `json:"description" gorm:"type:text"`
	Location       string    `json:"location" gorm:"size:255"`
	Service        string    `json:"service" gorm:"size:255"`
	CompletionDate time.Time `json:"completion_date"`
	IsActive       bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Media []ProjectMedia `json:"media" gorm:"foreignKey:ProjectID"`
}

// BeforeCreate sets a UUID before creating the record.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
