package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cldops/trainroom-server/config"
	"github.com/cldops/trainroom-server/middleware"
	"github.com/cldops/trainroom-server/models"
	"github.com/cldops/trainroom-server/utils"
)

// createPasswordRequest enforces the one-outstanding-request rule and stores
// only a bcrypt hash of the proposed password, never the plaintext.
func createPasswordRequest(c *gin.Context, user models.User, newPassword string) {
	var pending int64
	config.DB.Model(&models.PasswordChangeRequest{}).
		Where("user_id = ? AND status = ?", user.ID, models.RequestPending).
		Count(&pending)
	if pending > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "You already have a pending password change request."})
		return
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not hash password"})
		return
	}

	req := models.PasswordChangeRequest{
		UserID:      user.ID,
		NewPassword: hash,
		Status:      models.RequestPending,
	}
	if err := config.DB.Create(&req).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not submit request"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Request submitted. Wait for admin approval."})
}

type ResetPasswordReq struct {
	Username    string `json:"username" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// POST /api/auth/reset-password
// Pre-login variant, reached from the login page after failed attempts.
func ResetPassword(c *gin.Context) {
	var req ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Username not found."})
		return
	}
	createPasswordRequest(c, user, req.NewPassword)
}

type PasswordChangeReq struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// POST /api/password-requests
// Logged-in variant of the same workflow.
func RequestPasswordChange(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req PasswordChangeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}
	createPasswordRequest(c, u, req.NewPassword)
}

// GET /api/admin/password-requests
func ListPasswordRequests(c *gin.Context) {
	var requests []models.PasswordChangeRequest
	if err := config.DB.
		Preload("User").
		Where("status = ?", models.RequestPending).
		Order("requested_at desc").
		Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not list requests"})
		return
	}

	data := make([]gin.H, 0, len(requests))
	for _, r := range requests {
		username := ""
		if r.User != nil {
			username = r.User.Username
		}
		data = append(data, gin.H{
			"id":           r.ID,
			"user":         username,
			"status":       r.Status,
			"requested_at": r.RequestedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func loadPendingRequest(c *gin.Context) (models.PasswordChangeRequest, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request id"})
		return models.PasswordChangeRequest{}, false
	}
	var req models.PasswordChangeRequest
	if err := config.DB.Preload("User").First(&req, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Request not found"})
		return models.PasswordChangeRequest{}, false
	}
	// Approved and rejected requests are terminal; they are never revisited.
	if req.Status != models.RequestPending {
		c.JSON(http.StatusConflict, gin.H{"message": "Request has already been processed"})
		return models.PasswordChangeRequest{}, false
	}
	return req, true
}

// POST /api/admin/password-requests/:id/approve
// Sets the account credential to the requested hash and closes the request
// in one transaction.
func ApprovePasswordChange(c *gin.Context) {
	req, ok := loadPendingRequest(c)
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("id = ?", req.UserID).
			Update("password", req.NewPassword).Error; err != nil {
			return err
		}
		return tx.Model(&req).Update("status", models.RequestApproved).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not approve request"})
		return
	}

	username := ""
	if req.User != nil {
		username = req.User.Username
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password for " + username + " updated."})
}

// POST /api/admin/password-requests/:id/reject
func RejectPasswordChange(c *gin.Context) {
	req, ok := loadPendingRequest(c)
	if !ok {
		return
	}

	if err := config.DB.Model(&req).Update("status", models.RequestRejected).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not reject request"})
		return
	}

	username := ""
	if req.User != nil {
		username = req.User.Username
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password change for " + username + " rejected."})
}
