package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cldops/trainroom-server/config"
	"github.com/cldops/trainroom-server/middleware"
	"github.com/cldops/trainroom-server/models"
)

// GET /api/trips
func ListTrips(c *gin.Context) {
	q := config.DB.Model(&models.Trip{}).Order("date")
	if from := c.Query("from"); from != "" {
		if d, err := time.Parse("2006-01-02", from); err == nil {
			q = q.Where("date >= ?", d)
		}
	}

	var trips []models.Trip
	if err := q.Find(&trips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not list trips"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": trips})
}

type TripReq struct {
	Destination string  `json:"destination" binding:"required,max=200"`
	Date        string  `json:"date" binding:"required"` // YYYY-MM-DD
	Time        *string `json:"time"`                    // HH:MM, optional
	Notes       string  `json:"notes"`
}

// POST /api/trips
func CreateTrip(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req TripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date"})
		return
	}
	if req.Time != nil && *req.Time != "" {
		if _, err := time.Parse("15:04", *req.Time); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid time"})
			return
		}
	}

	trip := models.Trip{
		Destination: req.Destination,
		Date:        date,
		Time:        req.Time,
		Notes:       req.Notes,
		CreatedByID: u.ID,
	}
	if err := config.DB.Create(&trip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create trip"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Trip created successfully.", "data": trip})
}
