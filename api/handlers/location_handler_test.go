package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"shiftline-backend/shared/database"
	"shiftline-backend/shared/database/models"
)

func TestCreateLocationDefaultsTimezone(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Location Org")
	owner := seedUser(t, org, "owner@loc.test", models.RoleOwner)

	w := doJSON(t, router, http.MethodPost, "/api/locations", gin.H{
		"name":    "Harbor Stand",
		"address": "12 Pier Road",
	}, &owner)

	require.Equal(t, http.StatusCreated, w.Code)

	var location models.Location
	decodeBody(t, w, &location)
	require.Equal(t, "America/New_York", location.Timezone)
	require.True(t, location.IsActive)
}

func TestUpdateLocationCrossTenant(t *testing.T) {
	router := setupTest(t)
	orgA := seedOrg(t, "Org A")
	orgB := seedOrg(t, "Org B")
	ownerA := seedUser(t, orgA, "owner@a.test", models.RoleOwner)
	locationB := seedLocation(t, orgB, "Foreign Site")

	w := doJSON(t, router, http.MethodPatch, "/api/locations/"+locationB.ID.String(), gin.H{
		"name": "Hijacked",
	}, &ownerA)

	require.Equal(t, http.StatusNotFound, w.Code)

	var unchanged models.Location
	require.NoError(t, database.DB.First(&unchanged, "id = ?", locationB.ID).Error)
	require.Equal(t, "Foreign Site", unchanged.Name)
}

func TestUpdateLocationDeactivate(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Location Org")
	manager := seedUser(t, org, "mgr@loc.test", models.RoleManager)
	location := seedLocation(t, org, "Pop-up Stand")

	w := doJSON(t, router, http.MethodPatch, "/api/locations/"+location.ID.String(), gin.H{
		"is_active": false,
	}, &manager)

	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Location
	decodeBody(t, w, &updated)
	require.False(t, updated.IsActive)
}
