package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cldops/trainroom-server/config"
	"github.com/cldops/trainroom-server/middleware"
	"github.com/cldops/trainroom-server/models"
	"github.com/cldops/trainroom-server/utils"
)

type RegisterReq struct {
	Username string `json:"username" binding:"required,min=1,max=150"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /api/auth/register
// New accounts start inactive and wait for admin approval. Every approved
// registrant is staff-level, so the flag is set here already. The profile is
// created in the same transaction so a user without one cannot exist.
func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	var count int64
	config.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", req.Username, req.Email).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Username or email already taken"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not hash password"})
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		IsActive: false,
		IsStaff:  true,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Profile{UserID: user.ID, Color: models.DefaultColor}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration submitted. Wait for admin approval.",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if !utils.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	// Pending or deactivated accounts must not log in.
	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"message": "Account is awaiting approval or has been deactivated"})
		return
	}

	role := "staff"
	if user.IsSuperuser {
		role = "superuser"
	}
	token, err := utils.GenerateToken(fmt.Sprintf("%d", user.ID), role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"email":        user.Email,
			"is_superuser": user.IsSuperuser,
		},
	})
}

// GET /api/me
func Me(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)
	c.JSON(http.StatusOK, gin.H{
		"id":           u.ID,
		"username":     u.Username,
		"email":        u.Email,
		"is_staff":     u.IsStaff,
		"is_superuser": u.IsSuperuser,
		"color":        u.DisplayColor(),
		"date_joined":  u.DateJoined,
	})
}
