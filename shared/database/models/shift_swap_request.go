package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftSwapRequest proposes transferring a shift from its current holder
// (the requester) to another user. Approval reassigns the shift and must
// happen in the same transaction as the status change.
type ShiftSwapRequest struct {
	ID             uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID     `json:"organization_id" gorm:"type:uuid;not null;index"`
	ShiftID        uuid.UUID     `json:"shift_id" gorm:"type:uuid;not null;index"`
	RequesterID    uuid.UUID     `json:"requester_id" gorm:"type:uuid;not null;index"`
	TargetUserID   uuid.UUID     `json:"target_user_id" gorm:"type:uuid;not null"`
	Status         RequestStatus `json:"status" gorm:"size:20;not null;default:'pending'"`
	Reason         string        `json:"reason"`
	ReviewedBy     *uuid.UUID    `json:"reviewed_by" gorm:"type:uuid"`
	ReviewedAt     *time.Time    `json:"reviewed_at"`
	CreatedAt      time.Time     `json:"created_at"`
}

func (r *ShiftSwapRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
