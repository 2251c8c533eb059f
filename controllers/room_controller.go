package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cldops/trainroom-server/config"
	"github.com/cldops/trainroom-server/models"
)

// GET /api/rooms
func ListRooms(c *gin.Context) {
	var rooms []models.Room
	if err := config.DB.Order("id").Find(&rooms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not list rooms"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rooms})
}

// GET /api/rooms/:id
func GetRoomDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid room id"})
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Room not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": room})
}

type RoomReq struct {
	Name         string          `json:"name" binding:"required,max=100"`
	Description  string          `json:"description"`
	Capacity     uint            `json:"capacity"`
	Tools        string          `json:"tools"`
	Tables       uint            `json:"tables"`
	Chairs       uint            `json:"chairs"`
	Projector    string          `json:"projector"`
	Speaker      string          `json:"speaker"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
}

func yesNo(s string) string {
	if s == "Yes" {
		return "Yes"
	}
	return "No"
}

// POST /api/admin/rooms
func CreateRoom(c *gin.Context) {
	var req RoomReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}
	if req.PricePerHour.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Hourly rate cannot be negative"})
		return
	}

	var count int64
	config.DB.Model(&models.Room{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "A room with this name already exists"})
		return
	}

	room := models.Room{
		Name:         req.Name,
		Description:  req.Description,
		Capacity:     req.Capacity,
		Tools:        req.Tools,
		Tables:       req.Tables,
		Chairs:       req.Chairs,
		Projector:    yesNo(req.Projector),
		Speaker:      yesNo(req.Speaker),
		PricePerHour: req.PricePerHour,
	}
	if err := config.DB.Create(&room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create room"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Room added successfully.", "data": room})
}

// PUT /api/admin/rooms/:id
// Rate changes apply to future bookings only: already-computed costs on past
// bookings are left untouched.
func UpdateRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid room id"})
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Room not found"})
		return
	}

	var req RoomReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}
	if req.PricePerHour.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Hourly rate cannot be negative"})
		return
	}

	if req.Name != room.Name {
		var count int64
		config.DB.Model(&models.Room{}).Where("name = ? AND id <> ?", req.Name, room.ID).Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"message": "A room with this name already exists"})
			return
		}
	}

	room.Name = req.Name
	room.Description = req.Description
	room.Capacity = req.Capacity
	room.Tools = req.Tools
	room.Tables = req.Tables
	room.Chairs = req.Chairs
	room.Projector = yesNo(req.Projector)
	room.Speaker = yesNo(req.Speaker)
	room.PricePerHour = req.PricePerHour

	if err := config.DB.Save(&room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": room.Name + " updated.", "data": room})
}

// DELETE /api/admin/rooms/:id
// Deleting a room cascades to its bookings.
func DeleteRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid room id"})
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Room not found"})
		return
	}

	if err := config.DB.Delete(&room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": room.Name + " deleted."})
}
