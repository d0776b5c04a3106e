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
	"shiftline-backend/shared/utils/permission"
)

type CreateUserRequest struct {
	Email      string      `json:"email" binding:"required,email"`
	Password   string      `json:"password" binding:"required,min=6"`
	FirstName  string      `json:"first_name" binding:"required"`
	LastName   string      `json:"last_name" binding:"required"`
	Phone      string      `json:"phone"`
	Role       models.Role `json:"role"`
	HourlyRate *string     `json:"hourly_rate"`
	Position   string      `json:"position"`
}

// UpdateUserRequest uses pointers so absent fields are left untouched.
type UpdateUserRequest struct {
	FirstName  *string      `json:"first_name"`
	LastName   *string      `json:"last_name"`
	Phone      *string      `json:"phone"`
	Position   *string      `json:"position"`
	Role       *models.Role `json:"role"`
	HourlyRate *string      `json:"hourly_rate"`
	IsActive   *bool        `json:"is_active"`
}

// GetUsers lists all users in the caller's organization.
// @Summary List organization users
// @Tags users
// @Router /users [get]
func GetUsers(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	var users []models.User
	err := database.DB.
		Where("organization_id = ?", caller.OrganizationID).
		Order("first_name").
		Find(&users).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateUser adds an employee or manager to the caller's organization.
// Owner accounts are only created through registration.
// @Summary Create a user
// @Tags users
// @Router /users [post]
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	caller := middleware.CurrentUser(c)
	db := database.DB

	role := req.Role
	if role == "" {
		role = models.RoleEmployee
	}
	if role != models.RoleEmployee && role != models.RoleManager {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Role must be employee or manager"})
		return
	}

	var existing models.User
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already in use"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	user := models.User{
		OrganizationID: caller.OrganizationID,
		Email:          req.Email,
		Password:       hashedPassword,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Role:           role,
		HourlyRate:     req.HourlyRate,
		Position:       req.Position,
		IsActive:       true,
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser edits a profile. Callers may edit themselves; owners and
// managers may edit anyone in their organization. The privileged fields
// (role, hourly_rate, is_active) are silently dropped for callers the
// capability table does not admit.
// @Summary Update a user
// @Tags users
// @Router /users/{id} [patch]
func UpdateUser(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	caller := middleware.CurrentUser(c)
	if !permission.CanUpdateUser(caller, targetID) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
		return
	}

	db := database.DB

	var target models.User
	err = db.Where("id = ? AND organization_id = ?", targetID, caller.OrganizationID).
		First(&target).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Role != nil && permission.CanSetUserField(caller.Role, "role") {
		if !models.ValidRole(*req.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
			return
		}
		updates["role"] = *req.Role
	}
	if req.HourlyRate != nil && permission.CanSetUserField(caller.Role, "hourly_rate") {
		updates["hourly_rate"] = *req.HourlyRate
	}
	if req.IsActive != nil && permission.CanSetUserField(caller.Role, "is_active") {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := db.Model(&target).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
	}

	if err := db.First(&target, "id = ?", targetID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, target)
}
