package models

import (
	"time"

	"gorm.io/gorm"
)

type Bill struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Display number on printed invoices, e.g. "INV-7K2D9M".
	Number string `json:"number" gorm:"uniqueIndex;size:20"`

	ReservationID *uint `json:"reservationId,omitempty" gorm:"column:reservation_id;index"`
	GuestID       uint  `json:"guestId" gorm:"column:guest_id;index"`

	Subtotal float64 `json:"subtotal"`
	// Fixed 18% of subtotal; recomputed whenever items change.
	Tax      float64 `json:"tax"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
	Paid     float64 `json:"paid"`
	Balance  float64 `json:"balance"`

	PaymentStatus string `json:"paymentStatus" gorm:"column:payment_status;size:20;default:'Pending'"`
	PaymentMethod string `json:"paymentMethod" gorm:"column:payment_method;size:50"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Items []BillItem `json:"items" gorm:"foreignKey:BillID"`
	Guest Guest      `json:"guest,omitempty" gorm:"foreignKey:GuestID"`
}

type BillItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	BillID uint `json:"billId" gorm:"column:bill_id;index"`

	Description string  `json:"description" gorm:"size:255"`
	Quantity    int     `json:"quantity" gorm:"default:1"`
	UnitPrice   float64 `json:"unitPrice" gorm:"column:unit_price"`
	Amount      float64 `json:"amount"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
