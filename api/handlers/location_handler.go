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

type CreateLocationRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Timezone string `json:"timezone"`
}

type UpdateLocationRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
	IsActive *bool   `json:"is_active"`
}

// GetLocations lists the organization's locations.
func GetLocations(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	var locations []models.Location
	err := database.DB.
		Where("organization_id = ?", caller.OrganizationID).
		Order("name").
		Find(&locations).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, locations)
}

// CreateLocation adds a location to the caller's organization.
func CreateLocation(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	caller := middleware.CurrentUser(c)

	timezone := req.Timezone
	if timezone == "" {
		timezone = "America/New_York"
	}

	location := models.Location{
		OrganizationID: caller.OrganizationID,
		Name:           req.Name,
		Address:        req.Address,
		Timezone:       timezone,
		IsActive:       true,
	}
	if err := database.DB.Create(&location).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, location)
}

// UpdateLocation edits a location under the tenant check.
func UpdateLocation(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid location ID"})
		return
	}

	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	caller := middleware.CurrentUser(c)
	db := database.DB

	var location models.Location
	err = db.Where("id = ? AND organization_id = ?", locationID, caller.OrganizationID).
		First(&location).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Location not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Timezone != nil {
		updates["timezone"] = *req.Timezone
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := db.Model(&location).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
	}

	if err := db.First(&location, "id = ?", locationID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, location)
}
