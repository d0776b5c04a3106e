package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Availability is one weekly availability window for a user.
// DayOfWeek follows time.Weekday numbering (0 = Sunday).
// Start and end are wall-clock times in "HH:MM" form.
type Availability struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	DayOfWeek   int       `json:"day_of_week" gorm:"not null"`
	StartTime   string    `json:"start_time" gorm:"size:5;not null"`
	EndTime     string    `json:"end_time" gorm:"size:5;not null"`
	IsAvailable bool      `json:"is_available" gorm:"not null;default:true"`
}

func (a *Availability) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
