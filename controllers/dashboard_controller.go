package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cldops/trainroom-server/config"
	"github.com/cldops/trainroom-server/middleware"
	"github.com/cldops/trainroom-server/models"
)

// GET /api/dashboard?date=YYYY-MM-DD
// The staff landing view: every room with its bookings for the selected day,
// upcoming trips and the caller's open todos. A missing or unparseable date
// falls back to today rather than failing.
func Dashboard(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	selected := time.Now().Truncate(24 * time.Hour)
	if dateStr := c.Query("date"); dateStr != "" {
		if d, err := time.Parse("2006-01-02", dateStr); err == nil {
			selected = d
		}
	}
	dayEnd := selected.Add(24 * time.Hour)

	var rooms []models.Room
	if err := config.DB.Order("id").Find(&rooms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load rooms"})
		return
	}

	roomBookings := make([]gin.H, 0, len(rooms))
	for _, room := range rooms {
		var bookings []models.Booking
		config.DB.
			Preload("CreatedBy.Profile").
			Where("room_id = ? AND start_time >= ? AND start_time < ?", room.ID, selected, dayEnd).
			Order("start_time").
			Find(&bookings)
		roomBookings = append(roomBookings, gin.H{
			"room":     room,
			"bookings": bookings,
		})
	}

	var trips []models.Trip
	config.DB.Where("date >= ?", selected).Order("date").Limit(10).Find(&trips)

	var todos []models.Todo
	config.DB.Where("user_id = ? AND is_done = ?", u.ID, false).Order("due_date").Limit(10).Find(&todos)

	c.JSON(http.StatusOK, gin.H{
		"selected_date": selected.Format("2006-01-02"),
		"room_bookings": roomBookings,
		"trips":         trips,
		"todos":         todos,
	})
}
