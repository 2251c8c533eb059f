package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cldops/trainroom-server/config"
	"github.com/cldops/trainroom-server/models"
)

// GET /api/admin/notifications/password-requests
// One-shot poll: every row returned is flagged notified so the next poll
// skips it. Reading and flipping happen in one transaction.
func PendingPasswordRequests(c *gin.Context) {
	var pending []models.PasswordChangeRequest

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("User").
			Where("status = ? AND notified = ?", models.RequestPending, false).
			Order("requested_at").
			Find(&pending).Error; err != nil {
			return err
		}
		if len(pending) == 0 {
			return nil
		}
		ids := make([]uint, 0, len(pending))
		for _, r := range pending {
			ids = append(ids, r.ID)
		}
		return tx.Model(&models.PasswordChangeRequest{}).
			Where("id IN ?", ids).
			Update("notified", true).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load notifications"})
		return
	}

	data := make([]gin.H, 0, len(pending))
	for _, r := range pending {
		username := ""
		if r.User != nil {
			username = r.User.Username
		}
		data = append(data, gin.H{
			"id":           r.ID,
			"user":         username,
			"requested_at": r.RequestedAt.Format("2006-01-02 15:04:05"),
		})
	}
	c.JSON(http.StatusOK, data)
}

// GET /api/admin/notifications/registrations
// Stateless: returns every account still waiting for approval.
func PendingRegistrations(c *gin.Context) {
	var users []models.User
	if err := config.DB.
		Where("is_active = ? AND is_superuser = ?", false, false).
		Order("date_joined").
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load registrations"})
		return
	}

	data := make([]gin.H, 0, len(users))
	for _, u := range users {
		data = append(data, gin.H{
			"id":          u.ID,
			"username":    u.Username,
			"date_joined": u.DateJoined.Format("2006-01-02 15:04"),
		})
	}
	c.JSON(http.StatusOK, data)
}
