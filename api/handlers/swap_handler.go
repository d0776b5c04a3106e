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
	"shiftline-backend/shared/utils/permission"
)

type CreateSwapRequest struct {
	ShiftID      string `json:"shift_id" binding:"required"`
	TargetUserID string `json:"target_user_id" binding:"required"`
	Reason       string `json:"reason"`
}

// GetSwaps lists swap requests. Owners and managers see the whole
// organization; everyone else sees only swaps they requested or are the
// target of.
// @Summary List shift swap requests
// @Tags swaps
// @Router /swaps [get]
func GetSwaps(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	q := database.DB.Model(&models.ShiftSwapRequest{}).
		Where("organization_id = ?", caller.OrganizationID)
	if !permission.CanManage(caller.Role) {
		q = q.Where("requester_id = ? OR target_user_id = ?", caller.ID, caller.ID)
	}

	var swaps []models.ShiftSwapRequest
	if err := q.Order("created_at desc").Find(&swaps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, swaps)
}

// CreateSwap proposes transferring one of the caller's shifts to another
// user. The caller must currently hold the shift.
// @Summary Request a shift swap
// @Tags swaps
// @Router /swaps [post]
func CreateSwap(c *gin.Context) {
	var req CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	caller := middleware.CurrentUser(c)
	db := database.DB

	shiftID, err := uuid.Parse(req.ShiftID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid shift ID"})
		return
	}
	targetUserID, err := uuid.Parse(req.TargetUserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid target user ID"})
		return
	}

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

	if shift.UserID == nil || *shift.UserID != caller.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only request a swap for your own shift"})
		return
	}

	var target models.User
	err = db.Where("id = ? AND organization_id = ?", targetUserID, caller.OrganizationID).
		First(&target).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	swap := models.ShiftSwapRequest{
		OrganizationID: caller.OrganizationID,
		ShiftID:        shiftID,
		RequesterID:    caller.ID,
		TargetUserID:   targetUserID,
		Status:         models.RequestPending,
		Reason:         req.Reason,
	}
	if err := db.Create(&swap).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	notifier().SwapRequested(&swap, caller)

	c.JSON(http.StatusCreated, swap)
}

// ReviewSwap approves or denies a pending swap. Approval reassigns the
// referenced shift to the target user in the same transaction as the status
// change, so either both mutations land or neither does.
// @Summary Review a shift swap request
// @Tags swaps
// @Router /swaps/{id} [patch]
func ReviewSwap(c *gin.Context) {
	swapID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid swap ID"})
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

	var swap models.ShiftSwapRequest
	err = db.Where("id = ? AND organization_id = ?", swapID, caller.OrganizationID).
		First(&swap).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Swap request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	now := time.Now().UTC()
	var shift models.Shift

	err = db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":      status,
			"reviewed_by": caller.ID,
			"reviewed_at": now,
		}
		// The pending predicate makes the review first-writer-wins.
		res := tx.Model(&swap).Where("status = ?", models.RequestPending).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errAlreadyReviewed
		}

		if err := tx.First(&shift, "id = ?", swap.ShiftID).Error; err != nil {
			return err
		}

		if status == models.RequestApproved {
			if err := tx.Model(&shift).Update("user_id", swap.TargetUserID).Error; err != nil {
				return err
			}
			shift.UserID = &swap.TargetUserID
		}

		return nil
	})
	if err != nil {
		if err == errAlreadyReviewed {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Request has already been reviewed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	swap.Status = status
	swap.ReviewedBy = &caller.ID
	swap.ReviewedAt = &now

	notifier().SwapReviewed(&swap, &shift)

	c.JSON(http.StatusOK, swap)
}
