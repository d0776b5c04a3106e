package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeOffRequest is an employee request for time away from work.
// Status starts at pending and is resolved once by an owner or manager.
type TimeOffRequest struct {
	ID             uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID     `json:"organization_id" gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	StartDate      time.Time     `json:"start_date" gorm:"not null"`
	EndDate        time.Time     `json:"end_date" gorm:"not null"`
	Type           TimeOffType   `json:"type" gorm:"size:20;not null"`
	Status         RequestStatus `json:"status" gorm:"size:20;not null;default:'pending';index"`
	Reason         string        `json:"reason"`
	ReviewedBy     *uuid.UUID    `json:"reviewed_by" gorm:"type:uuid"`
	ReviewedAt     *time.Time    `json:"reviewed_at"`
	CreatedAt      time.Time     `json:"created_at"`
}

func (r *TimeOffRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
