package models

import "time"

// Password change requests are tri-state so a rejected request can be told
// apart from one that was never processed. Only the Pending state blocks a
// new submission for the same user.
const (
	RequestPending  = "Pending"
	RequestApproved = "Approved"
	RequestRejected = "Rejected"
)

type PasswordChangeRequest struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	NewPassword string    `gorm:"size:255;not null" json:"-"` // bcrypt hash of the proposed password
	Status      string    `gorm:"size:20;default:'Pending';index" json:"status"`
	RequestedAt time.Time `gorm:"autoCreateTime" json:"requested_at"`
	// Notified makes the admin polling endpoint return each pending row at
	// most once across repeated polls.
	Notified bool `gorm:"not null;default:false" json:"-"`
}

func (PasswordChangeRequest) TableName() string {
	return "password_change_requests"
}
