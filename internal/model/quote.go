package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Quote request lifecycle states.
const (
	QuoteStatusPending   = "pending"
	QuoteStatusContacted = "contacted"
	QuoteStatusCompleted = "completed"
	QuoteStatusRejected  = "rejected"
)

// Quote is a customer's request for a work estimate.
type Quote struct {
	ID        string    `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Phone     string    `json:"phone" gorm:"size:50"`
	Service   string    `json:"service" gorm:"size:255"`
	Message   string    `json:"message" gorm:"type:text"`
	Status    string    `json:"status" gorm:"size:20;default:'pending';index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets a UUID before creating the record.
func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// ValidQuoteStatus reports whether s is one of the known lifecycle states.
func ValidQuoteStatus(s string) bool {
	switch s {
	case QuoteStatusPending, QuoteStatusContacted, QuoteStatusCompleted, QuoteStatusRejected:
		return true
	}
	return false
}
