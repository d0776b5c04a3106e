package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"shiftline-backend/shared/database"
	"shiftline-backend/shared/database/models"
)

func TestCreateUserRequiresManagerRole(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Hiring Org")
	employee := seedUser(t, org, "emp@hiring.test", models.RoleEmployee)

	w := doJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"email":      "new@hiring.test",
		"password":   "secret123",
		"first_name": "New",
		"last_name":  "Hire",
	}, &employee)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateUserRejectsOwnerRole(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Hiring Org")
	owner := seedUser(t, org, "owner@hiring.test", models.RoleOwner)

	w := doJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"email":      "second-owner@hiring.test",
		"password":   "secret123",
		"first_name": "Second",
		"last_name":  "Owner",
		"role":       "owner",
	}, &owner)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Role must be employee or manager")
}

// Privileged fields in a self-edit by an employee are dropped without an
// error while the permitted fields still apply.
func TestUpdateUserDropsPrivilegedFieldsForEmployee(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Edit Org")
	employee := seedUser(t, org, "emp@edit.test", models.RoleEmployee)

	w := doJSON(t, router, http.MethodPatch, "/api/users/"+employee.ID.String(), gin.H{
		"first_name":  "Renamed",
		"role":        "owner",
		"hourly_rate": "99.00",
		"is_active":   false,
	}, &employee)

	require.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	require.NoError(t, database.DB.First(&updated, "id = ?", employee.ID).Error)
	require.Equal(t, "Renamed", updated.FirstName)
	require.Equal(t, models.RoleEmployee, updated.Role)
	require.Nil(t, updated.HourlyRate)
	require.True(t, updated.IsActive)
}

func TestUpdateUserEmployeeCannotEditOthers(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Edit Org")
	employee := seedUser(t, org, "emp@edit.test", models.RoleEmployee)
	other := seedUser(t, org, "other@edit.test", models.RoleEmployee)

	w := doJSON(t, router, http.MethodPatch, "/api/users/"+other.ID.String(), gin.H{
		"first_name": "Hacked",
	}, &employee)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateUserManagerSetsPrivilegedFields(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Edit Org")
	manager := seedUser(t, org, "mgr@edit.test", models.RoleManager)
	employee := seedUser(t, org, "emp@edit.test", models.RoleEmployee)

	w := doJSON(t, router, http.MethodPatch, "/api/users/"+employee.ID.String(), gin.H{
		"role":        "manager",
		"hourly_rate": "21.50",
	}, &manager)

	require.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	require.NoError(t, database.DB.First(&updated, "id = ?", employee.ID).Error)
	require.Equal(t, models.RoleManager, updated.Role)
	require.NotNil(t, updated.HourlyRate)
	require.Equal(t, "21.50", *updated.HourlyRate)
}

func TestUpdateUserCrossTenantIsNotFound(t *testing.T) {
	router := setupTest(t)
	orgA := seedOrg(t, "Org A")
	orgB := seedOrg(t, "Org B")
	ownerA := seedUser(t, orgA, "owner@a.test", models.RoleOwner)
	userB := seedUser(t, orgB, "user@b.test", models.RoleEmployee)

	w := doJSON(t, router, http.MethodPatch, "/api/users/"+userB.ID.String(), gin.H{
		"first_name": "Poached",
	}, &ownerA)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUsersScopedToOrganization(t *testing.T) {
	router := setupTest(t)
	orgA := seedOrg(t, "Org A")
	orgB := seedOrg(t, "Org B")
	ownerA := seedUser(t, orgA, "owner@a.test", models.RoleOwner)
	seedUser(t, orgA, "emp@a.test", models.RoleEmployee)
	seedUser(t, orgB, "emp@b.test", models.RoleEmployee)

	w := doJSON(t, router, http.MethodGet, "/api/users", nil, &ownerA)
	require.Equal(t, http.StatusOK, w.Code)

	var users []models.User
	decodeBody(t, w, &users)
	require.Len(t, users, 2)
	for _, u := range users {
		require.Equal(t, orgA.ID, u.OrganizationID)
	}

	// Password hashes never serialize.
	require.NotContains(t, w.Body.String(), "password")
}
