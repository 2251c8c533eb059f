package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cldops/trainroom-server/config"
	"github.com/cldops/trainroom-server/models"
)

// loadTargetUser resolves the :id param to a user or answers 404.
func loadTargetUser(c *gin.Context) (models.User, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return models.User{}, false
	}
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return models.User{}, false
	}
	return user, true
}

// guardTarget refuses destructive admin actions against superuser accounts.
// Applied uniformly before every reject/deactivate/delete.
func guardTarget(c *gin.Context, target models.User) bool {
	if target.IsSuperuser {
		c.JSON(http.StatusForbidden, gin.H{"message": "Superuser accounts cannot be modified"})
		return false
	}
	return true
}

// GET /api/admin/users
func ListUsers(c *gin.Context) {
	q := config.DB.Model(&models.User{}).Order("username")
	switch c.Query("filter") {
	case "pending":
		q = q.Where("is_active = ?", false)
	case "staff":
		q = q.Where("is_staff = ? AND is_superuser = ?", true, false)
	}
	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// POST /api/admin/users/:id/approve
// Idempotent: approving an already-active user is a no-op. Also the only way
// back for a deactivated account.
func ApproveUser(c *gin.Context) {
	user, ok := loadTargetUser(c)
	if !ok {
		return
	}

	if err := config.DB.Model(&user).Update("is_active", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not approve user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": user.Username + " approved."})
}

// POST /api/admin/users/:id/reject
// Rejecting a pending registration removes the record entirely; it is not a
// separate status.
func RejectUser(c *gin.Context) {
	user, ok := loadTargetUser(c)
	if !ok {
		return
	}
	if !guardTarget(c, user) {
		return
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not reject user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registration for '" + user.Username + "' rejected and removed."})
}

// POST /api/admin/users/:id/deactivate
// Soft-disable for offboarding: history and foreign keys stay intact.
func DeactivateUser(c *gin.Context) {
	user, ok := loadTargetUser(c)
	if !ok {
		return
	}
	if !guardTarget(c, user) {
		return
	}

	if err := config.DB.Model(&user).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not deactivate user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User '" + user.Username + "' has been deactivated."})
}

// DELETE /api/admin/users/:id
// Permanent removal (e.g. resigned employee); cascades to everything the
// user owns.
func DeleteUser(c *gin.Context) {
	user, ok := loadTargetUser(c)
	if !ok {
		return
	}
	if !guardTarget(c, user) {
		return
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User '" + user.Username + "' has been permanently deleted."})
}

type UserUpdateReq struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	IsActive *bool   `json:"is_active"`
}

// PUT /api/admin/users/:id
func UpdateUser(c *gin.Context) {
	user, ok := loadTargetUser(c)
	if !ok {
		return
	}
	if !guardTarget(c, user) {
		return
	}

	var req UserUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": user.Username + " updated.", "data": user})
}

// GET /api/admin/dashboard
// Summary counters for the admin landing page.
func AdminDashboard(c *gin.Context) {
	var totalBookings, pendingBookings, approvedBookings int64
	var staffAccounts, pendingUsers, rooms int64

	config.DB.Model(&models.Booking{}).Count(&totalBookings)
	config.DB.Model(&models.Booking{}).Where("status = ?", models.BookingPending).Count(&pendingBookings)
	config.DB.Model(&models.Booking{}).Where("status = ?", models.BookingApproved).Count(&approvedBookings)
	config.DB.Model(&models.User{}).Where("is_staff = ? AND is_superuser = ?", true, false).Count(&staffAccounts)
	config.DB.Model(&models.User{}).Where("is_active = ?", false).Count(&pendingUsers)
	config.DB.Model(&models.Room{}).Count(&rooms)

	var revenue decimal.Decimal
	row := config.DB.Model(&models.Booking{}).Select("COALESCE(SUM(total_cost), 0)").Row()
	if err := row.Scan(&revenue); err != nil {
		revenue = decimal.Zero
	}

	c.JSON(http.StatusOK, gin.H{
		"total_bookings":    totalBookings,
		"pending_bookings":  pendingBookings,
		"approved_bookings": approvedBookings,
		"staff_accounts":    staffAccounts,
		"pending_users":     pendingUsers,
		"rooms":             rooms,
		"total_revenue":     revenue.InexactFloat64(),
	})
}
