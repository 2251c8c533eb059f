package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cldops/trainroom-server/config"
	"github.com/cldops/trainroom-server/models"
)

// GET /api/holidays
// Public lookup used for calendar annotation.
func ListHolidays(c *gin.Context) {
	var holidays []models.Holiday
	if err := config.DB.Order("date").Find(&holidays).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not list holidays"})
		return
	}

	data := make([]gin.H, 0, len(holidays))
	for _, h := range holidays {
		data = append(data, gin.H{
			"date":        h.Date.Format("2006-01-02"),
			"name":        h.Name,
			"description": h.Description,
		})
	}
	c.JSON(http.StatusOK, data)
}

type HolidayReq struct {
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
}

// POST /api/admin/holidays
func CreateHoliday(c *gin.Context) {
	var req HolidayReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date"})
		return
	}

	var count int64
	config.DB.Model(&models.Holiday{}).Where("date = ?", date).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "A holiday already exists on this date"})
		return
	}

	holiday := models.Holiday{Date: date, Name: req.Name, Description: req.Description}
	if err := config.DB.Create(&holiday).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create holiday"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Holiday added successfully.", "data": holiday})
}

// DELETE /api/admin/holidays/:id
func DeleteHoliday(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid holiday id"})
		return
	}

	var holiday models.Holiday
	if err := config.DB.First(&holiday, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Holiday not found"})
		return
	}

	if err := config.DB.Delete(&holiday).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete holiday"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": holiday.Name + " deleted."})
}
