package permission

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"shiftline-backend/shared/database/models"
)

func TestHasRoleOrdering(t *testing.T) {
	assert.True(t, HasRole(models.RoleOwner, models.RoleManager))
	assert.True(t, HasRole(models.RoleOwner, models.RoleOwner))
	assert.True(t, HasRole(models.RoleManager, models.RoleEmployee))
	assert.False(t, HasRole(models.RoleManager, models.RoleOwner))
	assert.False(t, HasRole(models.RoleEmployee, models.RoleManager))
}

func TestCanManage(t *testing.T) {
	assert.True(t, CanManage(models.RoleOwner))
	assert.True(t, CanManage(models.RoleManager))
	assert.False(t, CanManage(models.RoleEmployee))
}

func TestCanSetUserField(t *testing.T) {
	for _, field := range []string{"role", "hourly_rate", "is_active"} {
		assert.False(t, CanSetUserField(models.RoleEmployee, field), field)
		assert.True(t, CanSetUserField(models.RoleManager, field), field)
		assert.True(t, CanSetUserField(models.RoleOwner, field), field)
	}

	// Unprivileged fields are open to every role the route admits.
	assert.True(t, CanSetUserField(models.RoleEmployee, "first_name"))
	assert.True(t, CanSetUserField(models.RoleEmployee, "phone"))
}

func TestCanUpdateUser(t *testing.T) {
	selfID := uuid.New()
	otherID := uuid.New()

	employee := &models.User{ID: selfID, Role: models.RoleEmployee}
	assert.True(t, CanUpdateUser(employee, selfID))
	assert.False(t, CanUpdateUser(employee, otherID))

	manager := &models.User{ID: selfID, Role: models.RoleManager}
	assert.True(t, CanUpdateUser(manager, otherID))
}
