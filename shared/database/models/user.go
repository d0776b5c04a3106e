package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a member of one organization. Users are never hard-deleted;
// deactivation flips IsActive.
type User struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	Password       string    `json:"-" gorm:"not null"`
	FirstName      string    `json:"first_name" gorm:"size:100;not null"`
	LastName       string    `json:"last_name" gorm:"size:100;not null"`
	Phone          string    `json:"phone" gorm:"size:20"`
	Role           Role      `json:"role" gorm:"size:20;not null;default:'employee'"`
	// Stored as text so the rate a manager enters round-trips unchanged.
	HourlyRate *string   `json:"hourly_rate,omitempty" gorm:"size:16"`
	Position   string    `json:"position" gorm:"size:100"`
	IsActive   bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Organization Organization `json:"-" gorm:"foreignKey:OrganizationID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsPrivileged reports whether the user may perform manager-level operations.
func (u *User) IsPrivileged() bool {
	return u.Role == RoleOwner || u.Role == RoleManager
}
