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

type CreateMessageRequest struct {
	RecipientID string `json:"recipient_id"`
	Subject     string `json:"subject" binding:"required"`
	Body        string `json:"body" binding:"required"`
}

type UpdateMessageRequest struct {
	IsRead *bool `json:"is_read"`
}

// GetMessages lists the organization's messages, newest first.
func GetMessages(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	var messages []models.Message
	err := database.DB.
		Where("organization_id = ?", caller.OrganizationID).
		Order("created_at desc").
		Find(&messages).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// CreateMessage sends a direct message, or a broadcast when no recipient is
// named. Sending triggers the notification fan-out: one record for a direct
// recipient, one for every active organization member except the sender for
// a broadcast.
func CreateMessage(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	caller := middleware.CurrentUser(c)
	db := database.DB

	var recipientID *uuid.UUID
	if req.RecipientID != "" {
		parsed, err := uuid.Parse(req.RecipientID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipient ID"})
			return
		}
		var recipient models.User
		err = db.Where("id = ? AND organization_id = ?", parsed, caller.OrganizationID).
			First(&recipient).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipient not found"})
			return
		}
		recipientID = &parsed
	}

	message := models.Message{
		OrganizationID: caller.OrganizationID,
		SenderID:       caller.ID,
		RecipientID:    recipientID,
		Subject:        req.Subject,
		Body:           req.Body,
		IsBroadcast:    recipientID == nil,
	}
	if err := db.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	notifier().MessageSent(&message, caller)

	c.JSON(http.StatusCreated, message)
}

// UpdateMessage lets the sender or recipient flip the read flag.
func UpdateMessage(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message ID"})
		return
	}

	var req UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	caller := middleware.CurrentUser(c)
	db := database.DB

	var message models.Message
	err = db.Where("id = ? AND organization_id = ?", messageID, caller.OrganizationID).
		First(&message).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	isParty := message.SenderID == caller.ID ||
		(message.RecipientID != nil && *message.RecipientID == caller.ID) ||
		message.IsBroadcast
	if !isParty {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}

	if req.IsRead != nil && *req.IsRead != message.IsRead {
		if err := db.Model(&message).Update("is_read", *req.IsRead).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		message.IsRead = *req.IsRead
	}

	c.JSON(http.StatusOK, message)
}
