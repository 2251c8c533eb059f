package models

import "time"

// Holiday is admin-managed reference data for calendar annotation.
type Holiday struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date        time.Time `gorm:"type:date;unique;not null" json:"date"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"size:255" json:"description"`
}

func (Holiday) TableName() string {
	return "holidays"
}
