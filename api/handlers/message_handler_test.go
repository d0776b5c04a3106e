package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"shiftline-backend/shared/database"
	"shiftline-backend/shared/database/models"
)

// A broadcast in a five-person organization notifies everyone but the sender.
func TestBroadcastFansOutToActiveMembers(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Message Org")
	sender := seedUser(t, org, "sender@msg.test", models.RoleOwner)
	seedUser(t, org, "a@msg.test", models.RoleManager)
	seedUser(t, org, "b@msg.test", models.RoleEmployee)
	seedUser(t, org, "c@msg.test", models.RoleEmployee)
	seedUser(t, org, "d@msg.test", models.RoleEmployee)

	w := doJSON(t, router, http.MethodPost, "/api/messages", gin.H{
		"subject": "All hands",
		"body":    "Team meeting on Friday at 3pm.",
	}, &sender)

	require.Equal(t, http.StatusCreated, w.Code)

	var message models.Message
	decodeBody(t, w, &message)
	require.True(t, message.IsBroadcast)
	require.Nil(t, message.RecipientID)

	var notifications []models.Notification
	database.DB.Where("type = ?", models.NotificationAnnouncement).Find(&notifications)
	require.Len(t, notifications, 4)
	for _, n := range notifications {
		require.NotEqual(t, sender.ID, n.UserID)
	}
}

func TestBroadcastSkipsInactiveMembers(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Message Org")
	sender := seedUser(t, org, "sender@msg.test", models.RoleOwner)
	seedUser(t, org, "active@msg.test", models.RoleEmployee)
	inactive := seedUser(t, org, "inactive@msg.test", models.RoleEmployee)
	require.NoError(t, database.DB.Model(&inactive).Update("is_active", false).Error)

	w := doJSON(t, router, http.MethodPost, "/api/messages", gin.H{
		"subject": "All hands",
		"body":    "Team meeting on Friday at 3pm.",
	}, &sender)
	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	database.DB.Model(&models.Notification{}).
		Where("user_id = ?", inactive.ID).
		Count(&count)
	require.EqualValues(t, 0, count)
}

func TestDirectMessageNotifiesRecipient(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Message Org")
	sender := seedUser(t, org, "sender@msg.test", models.RoleEmployee)
	recipient := seedUser(t, org, "recipient@msg.test", models.RoleEmployee)

	w := doJSON(t, router, http.MethodPost, "/api/messages", gin.H{
		"recipient_id": recipient.ID.String(),
		"subject":      "Shift question",
		"body":         "Can you cover Tuesday?",
	}, &sender)

	require.Equal(t, http.StatusCreated, w.Code)

	var message models.Message
	decodeBody(t, w, &message)
	require.False(t, message.IsBroadcast)

	var notifications []models.Notification
	database.DB.Where("user_id = ?", recipient.ID).Find(&notifications)
	require.Len(t, notifications, 1)
}

func TestCreateMessageCrossTenantRecipient(t *testing.T) {
	router := setupTest(t)
	orgA := seedOrg(t, "Org A")
	orgB := seedOrg(t, "Org B")
	sender := seedUser(t, orgA, "sender@a.test", models.RoleEmployee)
	outsider := seedUser(t, orgB, "outsider@b.test", models.RoleEmployee)

	w := doJSON(t, router, http.MethodPost, "/api/messages", gin.H{
		"recipient_id": outsider.ID.String(),
		"subject":      "Hello",
		"body":         "Psst.",
	}, &sender)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateMessageNonPartyIsNotFound(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Message Org")
	sender := seedUser(t, org, "sender@msg.test", models.RoleEmployee)
	recipient := seedUser(t, org, "recipient@msg.test", models.RoleEmployee)
	bystander := seedUser(t, org, "bystander@msg.test", models.RoleEmployee)

	w := doJSON(t, router, http.MethodPost, "/api/messages", gin.H{
		"recipient_id": recipient.ID.String(),
		"subject":      "Private",
		"body":         "Between us.",
	}, &sender)
	require.Equal(t, http.StatusCreated, w.Code)

	var message models.Message
	decodeBody(t, w, &message)

	w = doJSON(t, router, http.MethodPatch, "/api/messages/"+message.ID.String(), gin.H{
		"is_read": true,
	}, &bystander)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPatch, "/api/messages/"+message.ID.String(), gin.H{
		"is_read": true,
	}, &recipient)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Message
	require.NoError(t, database.DB.First(&stored, "id = ?", message.ID).Error)
	require.True(t, stored.IsRead)
}
