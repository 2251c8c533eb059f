package models

import "time"

// ChatMessage rows are soft-deleted: IsDeleted hides them from every read
// but the row stays for history.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID  uint      `gorm:"not null;index" json:"sender_id"`
	Sender    *User     `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	IsDeleted bool      `gorm:"not null;default:false" json:"-"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
