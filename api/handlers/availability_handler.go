package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"shiftline-backend/api/middleware"
	"shiftline-backend/shared/database"
	"shiftline-backend/shared/database/models"
	"shiftline-backend/shared/utils/permission"
)

type CreateAvailabilityRequest struct {
	UserID      string `json:"user_id"`
	DayOfWeek   *int   `json:"day_of_week" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	IsAvailable *bool  `json:"is_available"`
}

var clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// GetAvailability lists weekly availability windows. Defaults to the
// caller's own; owners and managers may pass ?user_id= for anyone in the
// organization.
func GetAvailability(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	db := database.DB

	userID := caller.ID
	if requested := c.Query("user_id"); requested != "" && permission.CanManage(caller.Role) {
		parsed, err := uuid.Parse(requested)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
			return
		}
		var target models.User
		err = db.Where("id = ? AND organization_id = ?", parsed, caller.OrganizationID).
			First(&target).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		userID = parsed
	}

	var entries []models.Availability
	err := db.Where("user_id = ?", userID).
		Order("day_of_week, start_time").
		Find(&entries).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// CreateAvailability records an availability window for the caller, or for
// another organization member when the caller is privileged.
func CreateAvailability(c *gin.Context) {
	var req CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	caller := middleware.CurrentUser(c)
	db := database.DB

	if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Day of week must be between 0 and 6"})
		return
	}
	if !clockRegex.MatchString(req.StartTime) || !clockRegex.MatchString(req.EndTime) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Times must use the HH:MM format"})
		return
	}

	userID := caller.ID
	if req.UserID != "" && req.UserID != caller.ID.String() {
		if !permission.CanManage(caller.Role) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
			return
		}
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
			return
		}
		var target models.User
		err = db.Where("id = ? AND organization_id = ?", parsed, caller.OrganizationID).
			First(&target).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		userID = parsed
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	entry := models.Availability{
		UserID:      userID,
		DayOfWeek:   *req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: isAvailable,
	}
	if err := db.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// DeleteAvailability removes an availability window. The owning user's
// organization is checked so cross-tenant ids read as not found.
func DeleteAvailability(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid availability ID"})
		return
	}

	caller := middleware.CurrentUser(c)
	db := database.DB

	var entry models.Availability
	if err := db.First(&entry, "id = ?", entryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Availability not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	var owner models.User
	err = db.Where("id = ? AND organization_id = ?", entry.UserID, caller.OrganizationID).
		First(&owner).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Availability not found"})
		return
	}

	if entry.UserID != caller.ID && !permission.CanManage(caller.Role) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
		return
	}

	if err := db.Delete(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability deleted"})
}
