package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GuestClassRegular   = "Regular"
	GuestClassVIP       = "VIP"
	GuestClassCorporate = "Corporate"
)

type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Name string `json:"name" gorm:"size:255"`
	// Phone is the natural dedup key for the guest directory.
	Phone string `json:"phone" gorm:"size:30;uniqueIndex"`
	Email string `json:"email" gorm:"size:150"`

	Address string `json:"address" gorm:"type:text"`
	City    string `json:"city" gorm:"size:100"`
	State   string `json:"state" gorm:"size:100"`
	Country string `json:"country" gorm:"size:100"`
	Pincode string `json:"pincode" gorm:"size:20"`

	IDProofType   string `json:"idProofType" gorm:"column:id_proof_type;size:50"`
	IDProofNumber string `json:"idProofNumber" gorm:"column:id_proof_number;size:100"`

	Classification string `json:"classification" gorm:"size:30;default:'Regular'"`

	// Cumulative stats, rolled up when a stay completes.
	TotalBookings int        `json:"totalBookings" gorm:"column:total_bookings;default:0"`
	TotalSpent    float64    `json:"totalSpent" gorm:"column:total_spent;default:0"`
	LoyaltyPoints int        `json:"loyaltyPoints" gorm:"column:loyalty_points;default:0"`
	LastVisit     *time.Time `json:"lastVisit,omitempty" gorm:"column:last_visit"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func IsValidGuestClassification(s string) bool {
	return s == GuestClassRegular || s == GuestClassVIP || s == GuestClassCorporate
}
