package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shiftline-backend/api/middleware"
	"shiftline-backend/shared/database"
	"shiftline-backend/shared/database/models"
	"shiftline-backend/shared/logger"
	"shiftline-backend/shared/utils/cache"

	"go.uber.org/zap"
)

type ReportResponse struct {
	Users           []models.User           `json:"users"`
	Shifts          []models.Shift          `json:"shifts"`
	TimeOffRequests []models.TimeOffRequest `json:"time_off_requests"`
}

// GetReports returns the organization-wide reporting snapshot for owners.
// The snapshot is cached in redis for a short window; cache failures fall
// through to the database.
func GetReports(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	db := database.DB

	cacheKey := cache.ReportKey(caller.OrganizationID.String())
	if cm := cache.GetCacheManager(); cm != nil {
		var cached ReportResponse
		if found, err := cm.GetJSON(cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	var report ReportResponse

	err := db.Where("organization_id = ?", caller.OrganizationID).
		Order("first_name").
		Find(&report.Users).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	err = db.Where("organization_id = ?", caller.OrganizationID).
		Order("start_time").
		Find(&report.Shifts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	err = db.Where("organization_id = ?", caller.OrganizationID).
		Order("created_at DESC").
		Find(&report.TimeOffRequests).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if cm := cache.GetCacheManager(); cm != nil {
		if err := cm.SetJSON(cacheKey, report, cache.ReportTTL); err != nil {
			logger.GetLogger().Warn("report cache write failed",
				zap.String("organization_id", caller.OrganizationID.String()),
				zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, report)
}
