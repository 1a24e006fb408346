package models

import (
	"time"

	"gorm.io/gorm"
)

// RateType is a named rate plan for a room type (e.g. non-refundable,
// corporate). At most one plan per room type carries IsDefault, and the
// default plan cannot be deleted; both rules are enforced in the service.
type RateType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomTypeID uint `json:"roomTypeId" gorm:"column:room_type_id;index"`

	Code         string     `json:"code" gorm:"size:50"`
	Name         string     `json:"name" gorm:"size:100"`
	NightlyPrice float64    `json:"nightlyPrice" gorm:"column:nightly_price"`
	MinNights    int        `json:"minNights" gorm:"column:min_nights;default:1"`
	MaxNights    int        `json:"maxNights" gorm:"column:max_nights;default:0"`
	ValidFrom    *time.Time `json:"validFrom,omitempty" gorm:"column:valid_from"`
	ValidTo      *time.Time `json:"validTo,omitempty" gorm:"column:valid_to"`
	IsActive     bool       `json:"isActive" gorm:"column:is_active;default:true"`
	IsDefault    bool       `json:"isDefault" gorm:"column:is_default;default:false"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
