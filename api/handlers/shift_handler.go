package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"shiftline-backend/api/middleware"
	"shiftline-backend/shared/database"
	"shiftline-backend/shared/database/models"
	utils "shiftline-backend/shared/utils/auth"
	"shiftline-backend/shared/utils/query"
)

type CreateShiftRequest struct {
	LocationID string `json:"location_id"`
	UserID     string `json:"user_id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Position   string `json:"position"`
	Notes      string `json:"notes"`
	Status     string `json:"status"`
}

type UpdateShiftRequest struct {
	LocationID *string `json:"location_id"`
	UserID     *string `json:"user_id"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	Position   *string `json:"position"`
	Notes      *string `json:"notes"`
	Status     *string `json:"status"`
}

// normalizeShiftUser maps the client's "unassigned" sentinel (or an empty
// value) to nil and parses everything else as a user id.
func normalizeShiftUser(value string) (*uuid.UUID, error) {
	if value == "" || value == "unassigned" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// GetShifts lists the organization's shifts, optionally filtered by
// location, assignee or status, ordered by start time.
// @Summary List shifts
// @Tags shifts
// @Router /shifts [get]
func GetShifts(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	params := query.ParseQueryParams(c)

	allowedFilters := map[string]string{
		"location_id": "location_id",
		"user_id":     "user_id",
		"status":      "status",
	}
	allowedSortFields := map[string]string{
		"start_time": "start_time",
		"end_time":   "end_time",
		"status":     "status",
		"created_at": "created_at",
	}

	q := database.DB.Model(&models.Shift{}).
		Where("organization_id = ?", caller.OrganizationID)
	q = query.ApplyFilters(q, params.Filters, allowedFilters)
	q = query.ApplySort(q, params.Sort, allowedSortFields, "start_time asc")
	q = query.ApplyPagination(q, params)

	var shifts []models.Shift
	if err := q.Find(&shifts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// CreateShift schedules a new shift.
// @Summary Create a shift
// @Tags shifts
// @Router /shifts [post]
func CreateShift(c *gin.Context) {
	var req CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	caller := middleware.CurrentUser(c)
	db := database.DB

	if req.LocationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A location is required"})
		return
	}
	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid location ID"})
		return
	}

	var location models.Location
	err = db.Where("id = ? AND organization_id = ?", locationID, caller.OrganizationID).
		First(&location).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Location not found"})
		return
	}

	startTime, err := utils.ParseTime(req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A valid start time is required"})
		return
	}
	endTime, err := utils.ParseTime(req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A valid end time is required"})
		return
	}
	if !endTime.After(startTime) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The end time must be after the start time."})
		return
	}

	userID, err := normalizeShiftUser(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	status := models.ShiftStatus(req.Status)
	if req.Status == "" {
		status = models.ShiftScheduled
	}
	if !models.ValidShiftStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid shift status"})
		return
	}

	shift := models.Shift{
		OrganizationID: caller.OrganizationID,
		LocationID:     locationID,
		UserID:         userID,
		StartTime:      startTime,
		EndTime:        endTime,
		Position:       req.Position,
		Notes:          req.Notes,
		Status:         status,
	}
	if err := db.Create(&shift).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if shift.UserID != nil {
		notifier().ShiftAssigned(&shift)
	}

	c.JSON(http.StatusCreated, shift)
}

// UpdateShift applies a partial update under the tenant check. Status values
// are validated against the enum but transitions are otherwise free-form.
// @Summary Update a shift
// @Tags shifts
// @Router /shifts/{id} [patch]
func UpdateShift(c *gin.Context) {
	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid shift ID"})
		return
	}

	var req UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	caller := middleware.CurrentUser(c)
	db := database.DB

	var shift models.Shift
	err = db.Where("id = ? AND organization_id = ?", shiftID, caller.OrganizationID).
		First(&shift).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shift not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	updates := map[string]interface{}{}

	if req.LocationID != nil {
		locationID, err := uuid.Parse(*req.LocationID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid location ID"})
			return
		}
		var location models.Location
		err = db.Where("id = ? AND organization_id = ?", locationID, caller.OrganizationID).
			First(&location).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Location not found"})
			return
		}
		updates["location_id"] = locationID
	}

	// Validate the time pair as a whole, mixing incoming and stored values.
	startTime := shift.StartTime
	endTime := shift.EndTime
	if req.StartTime != nil {
		startTime, err = utils.ParseTime(*req.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "A valid start time is required"})
			return
		}
		updates["start_time"] = startTime
	}
	if req.EndTime != nil {
		endTime, err = utils.ParseTime(*req.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "A valid end time is required"})
			return
		}
		updates["end_time"] = endTime
	}
	if !endTime.After(startTime) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The end time must be after the start time."})
		return
	}

	var newAssignee *uuid.UUID
	if req.UserID != nil {
		userID, err := normalizeShiftUser(*req.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
			return
		}
		updates["user_id"] = userID
		if userID != nil && (shift.UserID == nil || *shift.UserID != *userID) {
			newAssignee = userID
		}
	}

	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Status != nil {
		status := models.ShiftStatus(*req.Status)
		if !models.ValidShiftStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid shift status"})
			return
		}
		updates["status"] = status
	}

	if len(updates) > 0 {
		if err := db.Model(&shift).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
	}

	if err := db.First(&shift, "id = ?", shiftID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if newAssignee != nil {
		notifier().ShiftAssigned(&shift)
	}

	c.JSON(http.StatusOK, shift)
}

// DeleteShift removes a shift permanently.
// @Summary Delete a shift
// @Tags shifts
// @Router /shifts/{id} [delete]
func DeleteShift(c *gin.Context) {
	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid shift ID"})
		return
	}

	caller := middleware.CurrentUser(c)
	db := database.DB

	var shift models.Shift
	err = db.Where("id = ? AND organization_id = ?", shiftID, caller.OrganizationID).
		First(&shift).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shift not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if err := db.Delete(&shift).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shift deleted"})
}
