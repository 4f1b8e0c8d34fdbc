package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a site administrator or content editor.
type User struct {
	ID           string `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	IsAdmin      bool   `json:"is_admin" gorm:"default:false"`
}

// BeforeCreate sets a UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
