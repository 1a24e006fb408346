package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation lifecycle statuses.
const (
	StatusInquiry    = "Inquiry"
	StatusTentative  = "Tentative"
	StatusHold       = "Hold"
	StatusConfirmed  = "Confirmed"
	StatusCheckedIn  = "Checked-in"
	StatusCheckedOut = "Checked-out"
	StatusCancelled  = "Cancelled"
)

// Payment statuses derived from paid amount vs total.
const (
	PaymentPending = "Pending"
	PaymentPartial = "Partial"
	PaymentPaid    = "Paid"
)

// Meal plans.
const (
	MealPlanNone      = "NM" // no meals
	MealPlanBreakfast = "BO" // breakfast only
	MealPlanHalfBoard = "HB"
	MealPlanFullBoard = "FB"
)

// Booking sources.
const (
	SourceDirect = "direct"
	SourceAgent  = "agent"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Reservations created together as one multi-room booking share a group id.
	BookingGroupID string `json:"bookingGroupId,omitempty" gorm:"column:booking_group_id;size:36;index"`

	GuestID uint  `json:"guestId" gorm:"column:guest_id;index"`
	RoomID  uint  `json:"roomId" gorm:"column:room_id;index"`
	AgentID *uint `json:"agentId,omitempty" gorm:"column:agent_id;index"`

	// Calendar dates, half-open: the checkout day is not occupied.
	CheckInDate  time.Time `json:"checkInDate" gorm:"column:check_in_date"`
	CheckOutDate time.Time `json:"checkOutDate" gorm:"column:check_out_date"`

	Adults   int `json:"adults" gorm:"default:1"`
	Children int `json:"children" gorm:"default:0"`
	Infants  int `json:"infants" gorm:"default:0"`

	MealPlan   string `json:"mealPlan" gorm:"column:meal_plan;size:10;default:'NM'"`
	RateTypeID *uint  `json:"rateTypeId,omitempty" gorm:"column:rate_type_id"`

	TotalAmount    float64 `json:"totalAmount" gorm:"column:total_amount"`
	AdvancePayment float64 `json:"advancePayment" gorm:"column:advance_payment"`
	PaymentStatus  string  `json:"paymentStatus" gorm:"column:payment_status;size:20;default:'Pending'"`

	Status string `json:"status" gorm:"size:30;index"`

	BookingSource string `json:"bookingSource" gorm:"column:booking_source;size:20;default:'direct'"`
	DirectSource  string `json:"directSource,omitempty" gorm:"column:direct_source;size:150"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Guest    Guest     `json:"guest,omitempty" gorm:"foreignKey:GuestID"`
	Room     Room      `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Agent    *Agent    `json:"agent,omitempty" gorm:"foreignKey:AgentID"`
	RateType *RateType `json:"rateType,omitempty" gorm:"foreignKey:RateTypeID"`
}

func IsValidReservationStatus(s string) bool {
	switch s {
	case StatusInquiry, StatusTentative, StatusHold, StatusConfirmed,
		StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	}
	return false
}

func IsValidMealPlan(s string) bool {
	switch s {
	case MealPlanNone, MealPlanBreakfast, MealPlanHalfBoard, MealPlanFullBoard:
		return true
	}
	return false
}
