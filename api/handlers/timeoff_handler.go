package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"shiftline-backend/api/middleware"
	"shiftline-backend/shared/database"
	"shiftline-backend/shared/database/models"
	utils "shiftline-backend/shared/utils/auth"
	"shiftline-backend/shared/utils/permission"
	"shiftline-backend/shared/utils/query"
)

type CreateTimeOffPayload struct {
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Type      string `json:"type"`
	Reason    string `json:"reason"`
}

type ReviewRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetTimeOffRequests lists time-off requests. Owners and managers see the
// whole organization; everyone else sees only their own.
// @Summary List time-off requests
// @Tags time-off
// @Router /time-off [get]
func GetTimeOffRequests(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	params := query.ParseQueryParams(c)

	allowedFilters := map[string]string{
		"status": "status",
		"type":   "type",
	}

	q := database.DB.Model(&models.TimeOffRequest{}).
		Where("organization_id = ?", caller.OrganizationID)
	if !permission.CanManage(caller.Role) {
		q = q.Where("user_id = ?", caller.ID)
	}
	q = query.ApplyFilters(q, params.Filters, allowedFilters)
	q = query.ApplyPagination(q, params)

	var requests []models.TimeOffRequest
	if err := q.Order("created_at desc").Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// CreateTimeOffRequest submits a time-off request. Any user may submit for
// themselves; owners and managers may submit on behalf of another user.
// @Summary Submit a time-off request
// @Tags time-off
// @Router /time-off [post]
func CreateTimeOffRequest(c *gin.Context) {
	var req CreateTimeOffPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	caller := middleware.CurrentUser(c)
	db := database.DB

	startDate, err := utils.ParseTime(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A valid start date is required"})
		return
	}
	endDate, err := utils.ParseTime(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A valid end date is required"})
		return
	}
	if endDate.Before(startDate) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The end date cannot be before the start date."})
		return
	}

	timeOffType := models.TimeOffType(req.Type)
	if !models.ValidTimeOffType(timeOffType) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid time-off type"})
		return
	}

	// Non-privileged callers always submit for themselves.
	userID := caller.ID
	if req.UserID != "" && permission.CanManage(caller.Role) {
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

	request := models.TimeOffRequest{
		OrganizationID: caller.OrganizationID,
		UserID:         userID,
		StartDate:      startDate,
		EndDate:        endDate,
		Type:           timeOffType,
		Status:         models.RequestPending,
		Reason:         req.Reason,
	}
	if err := db.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ReviewTimeOffRequest approves or denies a pending request, stamps the
// reviewer, and notifies the request owner.
// @Summary Review a time-off request
// @Tags time-off
// @Router /time-off/{id} [patch]
func ReviewTimeOffRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request ID"})
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	status := models.RequestStatus(req.Status)
	if status != models.RequestApproved && status != models.RequestDenied {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status must be approved or denied"})
		return
	}

	caller := middleware.CurrentUser(c)
	db := database.DB

	var request models.TimeOffRequest
	err = db.Where("id = ? AND organization_id = ?", requestID, caller.OrganizationID).
		First(&request).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"status":      status,
		"reviewed_by": caller.ID,
		"reviewed_at": now,
	}
	// The pending predicate makes the review first-writer-wins.
	res := db.Model(&request).Where("status = ?", models.RequestPending).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Request has already been reviewed"})
		return
	}

	request.Status = status
	request.ReviewedBy = &caller.ID
	request.ReviewedAt = &now

	notifier().TimeOffReviewed(&request)

	c.JSON(http.StatusOK, request)
}
