package models

// DefaultColor is the indigo assigned to new profiles.
const DefaultColor = "#6366F1"

// Profile is 1:1 with User and only carries the display color used to
// paint the owner's bookings and chat messages.
type Profile struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint   `gorm:"unique;not null" json:"user_id"`
	Color  string `gorm:"size:7;not null;default:'#6366F1'" json:"color"`
}

func (Profile) TableName() string {
	return "profiles"
}
