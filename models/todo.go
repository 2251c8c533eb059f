package models

import "time"

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

type Todo struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	Title     string     `gorm:"size:200;not null" json:"title"`
	Note      string     `gorm:"type:text" json:"note"`
	Priority  string     `gorm:"size:10;default:'Medium'" json:"priority"` // Low | Medium | High
	DueDate   *time.Time `gorm:"type:date" json:"due_date"`
	IsDone    bool       `gorm:"not null;default:false" json:"is_done"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Todo) TableName() string {
	return "todos"
}
