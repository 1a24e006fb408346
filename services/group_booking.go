package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-frontdesk/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupBookingInput is a multi-room submission: one stay (guest, dates,
// source, meal plan) across several room-detail slots.
type GroupBookingInput struct {
	GuestID  uint      `json:"guestId"`
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`

	Slots []RoomSlot `json:"slots"`

	MealPlan       string  `json:"mealPlan"`
	Status         string  `json:"status"`
	BookingSource  string  `json:"bookingSource"`
	DirectSource   string  `json:"directSource"`
	AgentID        *uint   `json:"agentId,omitempty"`
	AdvancePayment float64 `json:"advancePayment"`

	// AutoAssign fills unassigned slots first-fit from the requested type's
	// free rooms before validation.
	AutoAssign bool `json:"autoAssign"`
}

type SlotFailure struct {
	RoomID uint   `json:"roomId"`
	Error  string `json:"error"`
}

// GroupBookingResult reports the aggregate outcome: the group can end up
// partially created ("created N of M"); created siblings are not rolled back
// when a later slot fails.
type GroupBookingResult struct {
	GroupID    string               `json:"groupId"`
	Requested  int                  `json:"requested"`
	Created    []models.Reservation `json:"created"`
	Failed     []SlotFailure        `json:"failed"`
	GrandTotal float64              `json:"grandTotal"`
}

// PriceStay computes the total for a single-room stay: the selected rate
// plan's nightly price when one is chosen, else the room type's base price.
func (s *ReservationService) PriceStay(roomID uint, rateTypeID *uint, checkIn, checkOut time.Time) (float64, error) {
	var room models.Room
	if err := s.DB.Preload("RoomType").First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrRoomNotFound
		}
		return 0, fmt.Errorf("db error checking room %d: %w", roomID, err)
	}

	var rate *models.RateType
	if rateTypeID != nil && *rateTypeID != 0 {
		var rt models.RateType
		if err := s.DB.First(&rt, *rateTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrRateTypeNotFound
			}
			return 0, fmt.Errorf("db error checking rate plan: %w", err)
		}
		rate = &rt
	}

	return RoomTotal(StayRate(room.RoomType, rate), checkIn, checkOut), nil
}

// CreateGroup validates, prices and submits a multi-room booking. All rule
// checking happens before the first insert: a validation failure means zero
// writes. After submission starts, each slot is created independently and
// per-slot conflicts are reported, not rolled back.
func (s *ReservationService) CreateGroup(in GroupBookingInput) (*GroupBookingResult, error) {
	if in.GuestID == 0 {
		return nil, fmt.Errorf("validation: guest is required")
	}
	if in.CheckIn.IsZero() || in.CheckOut.IsZero() {
		return nil, fmt.Errorf("validation: check-in and check-out dates are required")
	}
	if !in.CheckOut.After(in.CheckIn) {
		return nil, fmt.Errorf("validation: check-out must be after check-in")
	}
	if in.Status == "" {
		in.Status = models.StatusConfirmed
	}
	if !models.IsValidReservationStatus(in.Status) {
		return nil, fmt.Errorf("validation: unknown status %q", in.Status)
	}

	var guest models.Guest
	if err := s.DB.First(&guest, in.GuestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("db error checking guest: %w", err)
	}

	snap, err := NewAvailabilityService(s.DB).LoadSnapshot()
	if err != nil {
		return nil, err
	}

	if in.AutoAssign {
		if err := AutoAssignRooms(in.Slots, snap, in.CheckIn, in.CheckOut); err != nil {
			return nil, err
		}
	}
	if err := ValidateSlots(in.Slots); err != nil {
		return nil, err
	}

	// Price every slot before any insert.
	totals := make([]float64, len(in.Slots))
	var grand float64
	for i, slot := range in.Slots {
		room, ok := snap.RoomByID(*slot.RoomID)
		if !ok {
			return nil, fmt.Errorf("validation: room %d not found", *slot.RoomID)
		}
		if room.RoomTypeID == nil || *room.RoomTypeID != *slot.RoomTypeID {
			return nil, fmt.Errorf("validation: room %s does not belong to the selected room type", room.RoomNumber)
		}

		var roomType models.RoomType
		if err := s.DB.First(&roomType, *slot.RoomTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("validation: room type %d not found", *slot.RoomTypeID)
			}
			return nil, fmt.Errorf("db error checking room type: %w", err)
		}

		var rate *models.RateType
		if slot.RateTypeID != nil && *slot.RateTypeID != 0 {
			var rt models.RateType
			if err := s.DB.First(&rt, *slot.RateTypeID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("validation: rate plan %d not found", *slot.RateTypeID)
				}
				return nil, fmt.Errorf("db error checking rate plan: %w", err)
			}
			if rt.RoomTypeID != *slot.RoomTypeID {
				return nil, fmt.Errorf("validation: rate plan %s does not belong to the selected room type", rt.Code)
			}
			rate = &rt
		}

		totals[i] = RoomTotal(StayRate(roomType, rate), in.CheckIn, in.CheckOut)
		grand += totals[i]
	}

	// The lump-sum advance splits evenly across rooms (informational share).
	advances := SplitAdvance(in.AdvancePayment, len(in.Slots))

	result := &GroupBookingResult{
		GroupID:    uuid.NewString(),
		Requested:  len(in.Slots),
		Created:    make([]models.Reservation, 0, len(in.Slots)),
		Failed:     make([]SlotFailure, 0),
		GrandTotal: grand,
	}

	for i, slot := range in.Slots {
		adults := slot.Adults
		if adults < 1 {
			adults = 1
		}
		res := models.Reservation{
			BookingGroupID: result.GroupID,
			GuestID:        in.GuestID,
			RoomID:         *slot.RoomID,
			AgentID:        in.AgentID,
			CheckInDate:    in.CheckIn,
			CheckOutDate:   in.CheckOut,
			Adults:         adults,
			Children:       slot.Children,
			Infants:        slot.Infants,
			MealPlan:       in.MealPlan,
			RateTypeID:     slot.RateTypeID,
			TotalAmount:    totals[i],
			AdvancePayment: advances[i],
			PaymentStatus:  DerivePaymentStatus(totals[i], totals[i]-advances[i]),
			Status:         in.Status,
			BookingSource:  in.BookingSource,
			DirectSource:   in.DirectSource,
		}

		if err := s.Create(&res); err != nil {
			result.Failed = append(result.Failed, SlotFailure{RoomID: *slot.RoomID, Error: err.Error()})
			continue
		}
		result.Created = append(result.Created, res)
	}

	return result, nil
}
