package models

import "time"

type Trip struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Destination string    `gorm:"size:200;not null" json:"destination"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	Time        *string   `gorm:"size:5" json:"time"` // HH:MM, optional
	Notes       string    `gorm:"type:text" json:"notes"`
	CreatedByID uint      `gorm:"not null" json:"created_by_id"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Trip) TableName() string {
	return "trips"
}
