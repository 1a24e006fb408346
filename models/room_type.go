package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `json:"name" gorm:"size:100;uniqueIndex"`
	BasePrice   float64 `json:"basePrice" gorm:"column:base_price"`
	Capacity    int     `json:"capacity" gorm:"default:2"`
	Description string  `json:"description" gorm:"type:text"`

	// JSON array of amenity strings, e.g. ["AC","WiFi","Balcony"].
	Amenities datatypes.JSON `json:"amenities,omitempty" gorm:"column:amenities"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RateTypes []RateType `json:"rateTypes,omitempty" gorm:"foreignKey:RoomTypeID"`
}
