package models

import "time"

type User struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username    string    `gorm:"size:150;unique;not null" json:"username"`
	Email       string    `gorm:"size:254;unique;not null" json:"email"`
	Password    string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, hidden from JSON
	IsActive    bool      `gorm:"not null;default:false" json:"is_active"`
	IsStaff     bool      `gorm:"not null;default:false" json:"is_staff"`
	IsSuperuser bool      `gorm:"not null;default:false" json:"is_superuser"`
	DateJoined  time.Time `gorm:"autoCreateTime" json:"date_joined"`

	Profile  *Profile  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	Bookings []Booking `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"-"`
	Trips    []Trip    `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"-"`
	Todos    []Todo    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// DisplayColor falls back to the default when the profile row is missing.
func (u *User) DisplayColor() string {
	if u.Profile != nil && u.Profile.Color != "" {
		return u.Profile.Color
	}
	return DefaultColor
}
