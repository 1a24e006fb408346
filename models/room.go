package models

import (
	"gorm.io/gorm"
)

// Administrative room statuses. These are set by front-desk staff and are
// independent of reservation-derived occupancy: a Blocked room is unavailable
// even when no reservation touches it.
const (
	RoomStatusAvailable   = "Available"
	RoomStatusReserved    = "Reserved"
	RoomStatusOccupied    = "Occupied"
	RoomStatusMaintenance = "Maintenance"
	RoomStatusBlocked     = "Blocked"
)

const (
	RoomCategoryMainBuilding = "main-building"
	RoomCategoryCottage      = "cottage"
)

type Room struct {
	gorm.Model

	// Nullable so rooms can be created before a type is picked; the DB won't
	// try to insert FK=0.
	RoomTypeID *uint `json:"roomTypeId,omitempty" gorm:"column:room_type_id;index"`

	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Floor      *int   `json:"floor,omitempty"`
	Category   string `json:"category" gorm:"type:varchar(30);default:'main-building'"`
	Status     string `json:"status" gorm:"type:varchar(30);default:'Available'"`

	RoomType RoomType `json:"roomType,omitempty" gorm:"foreignKey:RoomTypeID"`
}

func IsValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusAvailable, RoomStatusReserved, RoomStatusOccupied,
		RoomStatusMaintenance, RoomStatusBlocked:
		return true
	}
	return false
}

func IsValidRoomCategory(s string) bool {
	return s == RoomCategoryMainBuilding || s == RoomCategoryCottage
}
