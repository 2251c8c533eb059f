package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// money fields render as JSON numbers, matching the calendar feed
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	BookingPending  = "Pending"
	BookingApproved = "Approved"
	BookingRejected = "Rejected"
)

type Booking struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomID      uint      `gorm:"not null;index" json:"room_id"`
	Room        *Room     `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"room,omitempty"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Attendees   uint      `gorm:"default:1" json:"attendees"`
	Start       time.Time `gorm:"column:start_time;not null;index" json:"start"`
	End         time.Time `gorm:"column:end_time;not null" json:"end"`
	CreatedByID uint      `gorm:"not null" json:"created_by_id"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"-"`
	Color       *string   `gorm:"size:7" json:"color"`
	Status      string    `gorm:"size:20;default:'Pending'" json:"status"`

	// Derived on every create/update from the interval and the room's
	// current rate. Past bookings keep their cost when the rate changes.
	HoursUsed decimal.Decimal `gorm:"type:numeric(6,2);default:0" json:"hours_used"`
	TotalCost decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"total_cost"`
}

func (Booking) TableName() string {
	return "bookings"
}

// DisplayColor prefers the explicit override, then the creator's profile
// color, then the default.
func (b *Booking) DisplayColor() string {
	if b.Color != nil && *b.Color != "" {
		return *b.Color
	}
	if b.CreatedBy != nil {
		return b.CreatedBy.DisplayColor()
	}
	return DefaultColor
}
