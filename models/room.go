package models

import "github.com/shopspring/decimal"

type Room struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string          `gorm:"size:100;unique;not null" json:"name"`
	Description  string          `gorm:"size:255" json:"description"`
	Capacity     uint            `gorm:"default:0" json:"capacity"`
	Tools        string          `gorm:"size:255" json:"tools"` // e.g. "speaker, projector"
	Tables       uint            `gorm:"default:0" json:"tables"`
	Chairs       uint            `gorm:"default:0" json:"chairs"`
	Projector    string          `gorm:"size:3;default:'No'" json:"projector"` // Yes | No
	Speaker      string          `gorm:"size:3;default:'No'" json:"speaker"`   // Yes | No
	PricePerHour decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"price_per_hour"`

	Bookings []Booking `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Room) TableName() string {
	return "rooms"
}
