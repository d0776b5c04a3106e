package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is a per-recipient record derived from a domain event.
// Clients never create notifications directly; they are emitted as side
// effects of reviews, assignments and messages.
type Notification struct {
	ID             uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index"`
	Type           NotificationType `json:"type" gorm:"size:50;not null"`
	Title          string           `json:"title" gorm:"size:200;not null"`
	Message        string           `json:"message" gorm:"type:text;not null"`
	IsRead         bool             `json:"is_read" gorm:"not null;default:false;index"`
	CreatedAt      time.Time        `json:"created_at" gorm:"index"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
