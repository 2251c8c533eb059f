package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/cldops/trainroom-server/config"
	"github.com/cldops/trainroom-server/models"
)

const timestampLayout = "2006-01-02 15:04"

func loadBookingsForExport(c *gin.Context) ([]models.Booking, bool) {
	var bookings []models.Booking
	if err := config.DB.
		Preload("Room").
		Preload("CreatedBy").
		Order("start_time desc").
		Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load bookings"})
		return nil, false
	}
	return bookings, true
}

func writeWorkbook(c *gin.Context, filename string, f *excelize.File) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

// GET /api/admin/export/bookings
// One sheet, fixed header row, one row per booking. Decimals are written as
// floats and timestamps as "YYYY-MM-DD HH:MM" strings.
func ExportBookings(c *gin.Context) {
	bookings, ok := loadBookingsForExport(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Bookings"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{
		"ID", "Title", "Room", "Start", "End", "Created By", "Attendees",
		"Status", "Hours Used", "Rate/hr (PHP)", "Total Cost (PHP)",
	}
	f.SetSheetRow(sheet, "A1", &header)

	for i, b := range bookings {
		roomName := ""
		rate := 0.0
		if b.Room != nil {
			roomName = b.Room.Name
			rate = b.Room.PricePerHour.InexactFloat64()
		}
		createdBy := ""
		if b.CreatedBy != nil {
			createdBy = b.CreatedBy.Username
		}
		row := []interface{}{
			b.ID, b.Title, roomName,
			b.Start.Format(timestampLayout),
			b.End.Format(timestampLayout),
			createdBy, b.Attendees, b.Status,
			b.HoursUsed.InexactFloat64(), rate, b.TotalCost.InexactFloat64(),
		}
		f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row)
	}

	writeWorkbook(c, "bookings.xlsx", f)
}

// GET /api/admin/export/billing
func ExportBilling(c *gin.Context) {
	bookings, ok := loadBookingsForExport(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Room Billing"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{
		"ID", "Title", "Room", "Start", "End",
		"Hours Used", "Rate/hr (PHP)", "Total Cost (PHP)",
		"Booked By", "Status",
	}
	f.SetSheetRow(sheet, "A1", &header)

	for i, b := range bookings {
		roomName := ""
		rate := 0.0
		if b.Room != nil {
			roomName = b.Room.Name
			rate = b.Room.PricePerHour.InexactFloat64()
		}
		createdBy := ""
		if b.CreatedBy != nil {
			createdBy = b.CreatedBy.Username
		}
		row := []interface{}{
			b.ID, b.Title, roomName,
			b.Start.Format(timestampLayout),
			b.End.Format(timestampLayout),
			b.HoursUsed.InexactFloat64(), rate, b.TotalCost.InexactFloat64(),
			createdBy, b.Status,
		}
		f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row)
	}

	writeWorkbook(c, "room_billing.xlsx", f)
}

// GET /api/admin/billing
// JSON counterpart of the export: every booking with its cost plus the
// summed revenue.
func BillingReport(c *gin.Context) {
	bookings, ok := loadBookingsForExport(c)
	if !ok {
		return
	}

	total := 0.0
	rows := make([]gin.H, 0, len(bookings))
	for _, b := range bookings {
		roomName := ""
		if b.Room != nil {
			roomName = b.Room.Name
		}
		createdBy := ""
		if b.CreatedBy != nil {
			createdBy = b.CreatedBy.Username
		}
		total += b.TotalCost.InexactFloat64()
		rows = append(rows, gin.H{
			"id":         b.ID,
			"title":      b.Title,
			"room":       roomName,
			"start":      b.Start.Format(timestampLayout),
			"end":        b.End.Format(timestampLayout),
			"hours_used": b.HoursUsed.InexactFloat64(),
			"total_cost": b.TotalCost.InexactFloat64(),
			"booked_by":  createdBy,
			"status":     b.Status,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings":      rows,
		"total_revenue": total,
	})
}
