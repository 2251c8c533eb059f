package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ProjectPlanned    = "Planned"
	ProjectInProgress = "In Progress"
	ProjectDone       = "Done"
	ProjectCancelled  = "Cancelled"
)

type FutureProject struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string          `gorm:"size:200;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	TargetDate  *time.Time      `gorm:"type:date" json:"target_date"`
	Status      string          `gorm:"size:20;default:'Planned'" json:"status"`
	Provider    string          `gorm:"size:200" json:"provider"` // e.g. TESDA, External Trainer
	Budget      decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"budget"`
	CreatedByID uint            `gorm:"not null" json:"created_by_id"`
	CreatedBy   *User           `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (FutureProject) TableName() string {
	return "future_projects"
}
