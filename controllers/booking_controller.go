package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cldops/trainroom-server/config"
	"github.com/cldops/trainroom-server/middleware"
	"github.com/cldops/trainroom-server/models"
	"github.com/cldops/trainroom-server/utils"
)

var (
	errRoomNotFound    = errors.New("room not found")
	errBookingConflict = errors.New("booking conflict")
)

type BookingReq struct {
	RoomID    uint      `json:"room_id" binding:"required"`
	Title     string    `json:"title" binding:"required,max=200"`
	Attendees uint      `json:"attendees"`
	Start     time.Time `json:"start" binding:"required"`
	End       time.Time `json:"end" binding:"required"`
	Color     *string   `json:"color"`
	Status    string    `json:"status"`
}

func validStatus(s string) bool {
	return s == models.BookingPending || s == models.BookingApproved || s == models.BookingRejected
}

// lockRoom serializes check-then-insert per room: concurrent requests for
// the same room queue on its row until the first transaction commits, so two
// overlapping bookings can never both pass the conflict check. SQLite has a
// single writer and no FOR UPDATE, so the clause is skipped there.
func lockRoom(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// bookingConflictExists checks the half-open overlap rule for a room:
// [s1,e1) and [s2,e2) conflict iff s1 < e2 AND e1 > s2. Touching endpoints
// are allowed. excludeID skips the booking being edited.
func bookingConflictExists(tx *gorm.DB, roomID uint, start, end time.Time, excludeID uint) (bool, error) {
	q := tx.Model(&models.Booking{}).
		Where("room_id = ? AND start_time < ? AND end_time > ?", roomID, end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyBilling recomputes the derived hours/cost fields from the booking's
// interval and the room's current rate. A dangling room reference degrades
// to zero cost instead of failing the save.
func applyBilling(tx *gorm.DB, b *models.Booking) {
	var room models.Room
	if err := tx.First(&room, b.RoomID).Error; err != nil {
		room.PricePerHour = decimal.Zero
	}
	b.HoursUsed, b.TotalCost = utils.ComputeBilling(b.Start, b.End, room.PricePerHour)
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req BookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}
	if !req.End.After(req.Start) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "End must be after start"})
		return
	}
	if req.Status == "" {
		req.Status = models.BookingPending
	}
	if !validStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}
	if req.Attendees == 0 {
		req.Attendees = 1
	}

	booking := models.Booking{
		RoomID:      req.RoomID,
		Title:       req.Title,
		Attendees:   req.Attendees,
		Start:       req.Start,
		End:         req.End,
		CreatedByID: u.ID,
		Color:       req.Color,
		Status:      req.Status,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := lockRoom(tx).First(&room, req.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errRoomNotFound
			}
			return err
		}

		conflict, err := bookingConflictExists(tx, room.ID, req.Start, req.End, 0)
		if err != nil {
			return err
		}
		if conflict {
			return errBookingConflict
		}

		booking.HoursUsed, booking.TotalCost = utils.ComputeBilling(req.Start, req.End, room.PricePerHour)
		return tx.Create(&booking).Error
	})

	switch {
	case errors.Is(err, errRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Room not found"})
		return
	case errors.Is(err, errBookingConflict):
		c.JSON(http.StatusConflict, gin.H{"message": "This room is already booked for the selected time!"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create booking"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully!",
		"data":    booking,
	})
}

// GET /api/bookings
func ListBookings(c *gin.Context) {
	var bookings []models.Booking
	q := config.DB.Preload("Room").Order("start_time desc")

	if roomID := c.Query("room_id"); roomID != "" {
		q = q.Where("room_id = ?", roomID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	if err := q.Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": bookings})
}

// GET /api/bookings/events
// Calendar feed: one event per booking, colored by the explicit override or
// the creator's profile color.
func BookingEvents(c *gin.Context) {
	var bookings []models.Booking
	if err := config.DB.
		Preload("Room").
		Preload("CreatedBy.Profile").
		Order("start_time desc").
		Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load bookings"})
		return
	}

	events := make([]gin.H, 0, len(bookings))
	for _, b := range bookings {
		roomName := ""
		if b.Room != nil {
			roomName = b.Room.Name
		}
		createdBy := ""
		if b.CreatedBy != nil {
			createdBy = b.CreatedBy.Username
		}
		color := b.DisplayColor()
		events = append(events, gin.H{
			"id":              b.ID,
			"title":           b.Title,
			"start":           b.Start.Format(time.RFC3339),
			"end":             b.End.Format(time.RFC3339),
			"backgroundColor": color,
			"borderColor":     color,
			"extendedProps": gin.H{
				"room_name":  roomName,
				"created_by": createdBy,
				"attendees":  b.Attendees,
				"hours_used": b.HoursUsed.InexactFloat64(),
				"total_cost": b.TotalCost.InexactFloat64(),
				"status":     b.Status,
			},
		})
	}
	c.JSON(http.StatusOK, events)
}

type BookingUpdateReq struct {
	Title     *string    `json:"title"`
	Attendees *uint      `json:"attendees"`
	Start     *time.Time `json:"start"`
	End       *time.Time `json:"end"`
	Color     *string    `json:"color"`
	Status    *string    `json:"status"`
}

// PUT /api/bookings/:id
// Re-checks the conflict rule excluding the booking itself and recomputes
// billing when the interval changed.
func UpdateBooking(c *gin.Context) {
	booking := c.MustGet(middleware.CtxBooking).(models.Booking)

	var req BookingUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	if req.Title != nil {
		booking.Title = *req.Title
	}
	if req.Attendees != nil {
		booking.Attendees = *req.Attendees
	}
	if req.Color != nil {
		booking.Color = req.Color
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
			return
		}
		booking.Status = *req.Status
	}

	intervalChanged := false
	if req.Start != nil {
		booking.Start = *req.Start
		intervalChanged = true
	}
	if req.End != nil {
		booking.End = *req.End
		intervalChanged = true
	}
	if !booking.End.After(booking.Start) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "End must be after start"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if intervalChanged {
			if err := lockRoom(tx).First(&models.Room{}, booking.RoomID).Error; err != nil &&
				!errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			conflict, err := bookingConflictExists(tx, booking.RoomID, booking.Start, booking.End, booking.ID)
			if err != nil {
				return err
			}
			if conflict {
				return errBookingConflict
			}
			applyBilling(tx, &booking)
		}
		return tx.Omit(clause.Associations).Save(&booking).Error
	})

	switch {
	case errors.Is(err, errBookingConflict):
		c.JSON(http.StatusConflict, gin.H{"message": "This room is already booked for the selected time!"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking updated.", "data": booking})
}

// DELETE /api/bookings/:id
func CancelBooking(c *gin.Context) {
	booking := c.MustGet(middleware.CtxBooking).(models.Booking)

	if err := config.DB.Delete(&models.Booking{}, booking.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not cancel booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking has been cancelled."})
}
