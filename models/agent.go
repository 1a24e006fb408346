package models

import (
	"time"

	"gorm.io/gorm"
)

// Agent is a travel agent used as the attribution source on agent-sourced
// reservations.
type Agent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name          string  `json:"name" gorm:"size:255"`
	Email         string  `json:"email" gorm:"size:150"`
	Phone         string  `json:"phone" gorm:"size:30"`
	CommissionPct float64 `json:"commissionPct" gorm:"column:commission_pct;default:0"`
	Address       string  `json:"address" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
