package permission

import (
	"shiftline-backend/shared/database/models"

	"github.com/google/uuid"
)

// roleRank orders the three roles. Higher rank includes every capability of
// the ranks below it.
var roleRank = map[models.Role]int{
	models.RoleEmployee: 1,
	models.RoleManager:  2,
	models.RoleOwner:    3,
}

// HasRole reports whether role meets or exceeds the required role.
func HasRole(role, required models.Role) bool {
	return roleRank[role] >= roleRank[required]
}

// CanManage reports whether the role may perform manager-level writes
// (shifts, locations, reviews, user creation).
func CanManage(role models.Role) bool {
	return HasRole(role, models.RoleManager)
}

// privilegedUserFields maps User fields to the minimum role allowed to set
// them. Fields absent from the table may be set by any caller the route
// already admits. Checked once per request, not re-derived per field site.
var privilegedUserFields = map[string]models.Role{
	"role":        models.RoleManager,
	"hourly_rate": models.RoleManager,
	"is_active":   models.RoleManager,
}

// CanSetUserField reports whether a caller with the given role may set the
// named User field. An employee editing their own profile cannot elevate
// role, rate or active status.
func CanSetUserField(role models.Role, field string) bool {
	required, privileged := privilegedUserFields[field]
	if !privileged {
		return true
	}
	return HasRole(role, required)
}

// CanUpdateUser implements the self-or-privileged rule for profile updates.
func CanUpdateUser(caller *models.User, targetID uuid.UUID) bool {
	if caller.ID == targetID {
		return true
	}
	return CanManage(caller.Role)
}
