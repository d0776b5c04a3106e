package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shift is a scheduled block of work at a location. UserID is nil while the
// shift is unassigned; an approved swap request reassigns it.
type Shift struct {
	ID             uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID   `json:"organization_id" gorm:"type:uuid;not null;index"`
	LocationID     uuid.UUID   `json:"location_id" gorm:"type:uuid;not null;index"`
	UserID         *uuid.UUID  `json:"user_id" gorm:"type:uuid;index"`
	StartTime      time.Time   `json:"start_time" gorm:"not null;index"`
	EndTime        time.Time   `json:"end_time" gorm:"not null"`
	Position       string      `json:"position" gorm:"size:100"`
	Notes          string      `json:"notes"`
	Status         ShiftStatus `json:"status" gorm:"size:20;not null;default:'scheduled'"`
	CreatedAt      time.Time   `json:"created_at"`
}

func (s *Shift) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
