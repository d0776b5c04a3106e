package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"shiftline-backend/api/middleware"
	"shiftline-backend/shared/database"
	"shiftline-backend/shared/database/models"
)

type UpdateNotificationRequest struct {
	IsRead *bool `json:"is_read"`
}

// GetNotifications lists the caller's notifications, newest first.
func GetNotifications(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	var notifications []models.Notification
	err := database.DB.
		Where("user_id = ?", caller.ID).
		Order("created_at desc").
		Find(&notifications).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// UpdateNotification marks one of the caller's notifications read or unread.
// Marking an already-read notification read again is a no-op.
func UpdateNotification(c *gin.Context) {
	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid notification ID"})
		return
	}

	var req UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	caller := middleware.CurrentUser(c)
	db := database.DB

	var notification models.Notification
	err = db.Where("id = ? AND user_id = ?", notificationID, caller.ID).
		First(&notification).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if req.IsRead != nil && *req.IsRead != notification.IsRead {
		if err := db.Model(&notification).Update("is_read", *req.IsRead).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		notification.IsRead = *req.IsRead
	}

	c.JSON(http.StatusOK, notification)
}

// MarkAllNotificationsRead marks every unread notification of the caller as
// read. Idempotent.
func MarkAllNotificationsRead(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	err := database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", caller.ID, false).
		Update("is_read", true).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All marked as read"})
}
