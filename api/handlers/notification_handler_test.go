package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"shiftline-backend/shared/database"
	"shiftline-backend/shared/database/models"
)

func seedNotification(t *testing.T, org models.Organization, user models.User, isRead bool) models.Notification {
	t.Helper()
	n := models.Notification{
		OrganizationID: org.ID,
		UserID:         user.ID,
		Type:           models.NotificationAnnouncement,
		Title:          "Heads up",
		Message:        "Something happened",
		IsRead:         isRead,
	}
	require.NoError(t, database.DB.Create(&n).Error)
	return n
}

func TestUpdateNotificationMarkReadIsIdempotent(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Notify Org")
	user := seedUser(t, org, "user@notify.test", models.RoleEmployee)
	n := seedNotification(t, org, user, false)

	for i := 0; i < 2; i++ {
		w := doJSON(t, router, http.MethodPatch, "/api/notifications/"+n.ID.String(), gin.H{
			"is_read": true,
		}, &user)
		require.Equal(t, http.StatusOK, w.Code)

		var stored models.Notification
		require.NoError(t, database.DB.First(&stored, "id = ?", n.ID).Error)
		require.True(t, stored.IsRead)
	}
}

func TestUpdateNotificationOwnershipEnforced(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Notify Org")
	user := seedUser(t, org, "user@notify.test", models.RoleEmployee)
	other := seedUser(t, org, "other@notify.test", models.RoleEmployee)
	n := seedNotification(t, org, user, false)

	w := doJSON(t, router, http.MethodPatch, "/api/notifications/"+n.ID.String(), gin.H{
		"is_read": true,
	}, &other)

	require.Equal(t, http.StatusNotFound, w.Code)

	var stored models.Notification
	require.NoError(t, database.DB.First(&stored, "id = ?", n.ID).Error)
	require.False(t, stored.IsRead)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Notify Org")
	user := seedUser(t, org, "user@notify.test", models.RoleEmployee)
	other := seedUser(t, org, "other@notify.test", models.RoleEmployee)
	seedNotification(t, org, user, false)
	seedNotification(t, org, user, false)
	seedNotification(t, org, user, true)
	seedNotification(t, org, other, false)

	w := doJSON(t, router, http.MethodPost, "/api/notifications/mark-all-read", nil, &user)
	require.Equal(t, http.StatusOK, w.Code)

	var unread int64
	database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Count(&unread)
	require.EqualValues(t, 0, unread)

	// Other users' notifications stay untouched.
	var otherUnread int64
	database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", other.ID, false).
		Count(&otherUnread)
	require.EqualValues(t, 1, otherUnread)

	// Running it again with nothing unread still succeeds.
	w = doJSON(t, router, http.MethodPost, "/api/notifications/mark-all-read", nil, &user)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetNotificationsOnlyOwn(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Notify Org")
	user := seedUser(t, org, "user@notify.test", models.RoleEmployee)
	other := seedUser(t, org, "other@notify.test", models.RoleEmployee)
	seedNotification(t, org, user, false)
	seedNotification(t, org, other, false)

	w := doJSON(t, router, http.MethodGet, "/api/notifications", nil, &user)
	require.Equal(t, http.StatusOK, w.Code)

	var notifications []models.Notification
	decodeBody(t, w, &notifications)
	require.Len(t, notifications, 1)
	require.Equal(t, user.ID, notifications[0].UserID)
}
