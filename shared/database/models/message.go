package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a user-to-user or broadcast message. A nil RecipientID with
// IsBroadcast set means the message addresses the whole organization.
type Message struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index"`
	SenderID       uuid.UUID  `json:"sender_id" gorm:"type:uuid;not null;index"`
	RecipientID    *uuid.UUID `json:"recipient_id" gorm:"type:uuid;index"`
	Subject        string     `json:"subject" gorm:"size:200;not null"`
	Body           string     `json:"body" gorm:"type:text;not null"`
	IsRead         bool       `json:"is_read" gorm:"not null;default:false"`
	IsBroadcast    bool       `json:"is_broadcast" gorm:"not null;default:false"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
