package services

import (
	"testing"
	"time"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"

	"github.com/stretchr/testify/assert"
)

func ptrInt(v int) *int              { return &v }
func ptrStr(v string) *string        { return &v }
func ptrFloat(v float64) *float64    { return &v }
func ptrTime(v time.Time) *time.Time { return &v }

func legacyReservation(createdAt time.Time) models.Reservation {
	return models.Reservation{
		GuestID:       1,
		RoomID:        1,
		CheckInDate:   date(2025, 10, 14),
		CheckOutDate:  date(2025, 10, 16),
		MealPlan:      models.MealPlanNone,
		BookingSource: models.SourceDirect,
		CreatedAt:     createdAt,
	}
}

func TestIsRelated(t *testing.T) {
	base := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	anchor := legacyReservation(base)

	tests := []struct {
		name   string
		mutate func(r *models.Reservation)
		want   bool
	}{
		{"identical attributes same instant", func(r *models.Reservation) {}, true},
		{"29s apart", func(r *models.Reservation) { r.CreatedAt = base.Add(29 * time.Second) }, true},
		{"exactly 30s apart", func(r *models.Reservation) { r.CreatedAt = base.Add(30 * time.Second) }, true},
		{"31s apart", func(r *models.Reservation) { r.CreatedAt = base.Add(31 * time.Second) }, false},
		{"30s earlier", func(r *models.Reservation) { r.CreatedAt = base.Add(-30 * time.Second) }, true},
		{"different guest", func(r *models.Reservation) { r.GuestID = 2 }, false},
		{"different check-in", func(r *models.Reservation) { r.CheckInDate = date(2025, 10, 15) }, false},
		{"different check-out", func(r *models.Reservation) { r.CheckOutDate = date(2025, 10, 17) }, false},
		{"different meal plan", func(r *models.Reservation) { r.MealPlan = models.MealPlanBreakfast }, false},
		{"different source", func(r *models.Reservation) { r.BookingSource = models.SourceAgent }, false},
		{"agent set on one side only", func(r *models.Reservation) { r.AgentID = utils.PtrUint(5) }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			other := legacyReservation(base)
			tc.mutate(&other)
			assert.Equal(t, tc.want, isRelated(&anchor, &other))
			assert.Equal(t, tc.want, isRelated(&other, &anchor), "rule must be symmetric")
		})
	}
}

func TestIsRelatedAgents(t *testing.T) {
	base := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	a := legacyReservation(base)
	a.BookingSource = models.SourceAgent
	a.AgentID = utils.PtrUint(5)

	b := legacyReservation(base.Add(10 * time.Second))
	b.BookingSource = models.SourceAgent
	b.AgentID = utils.PtrUint(5)
	assert.True(t, isRelated(&a, &b))

	b.AgentID = utils.PtrUint(6)
	assert.False(t, isRelated(&a, &b), "different agents are different bookings")
}

func patchedReservation() models.Reservation {
	return models.Reservation{
		GuestID:       1,
		RoomID:        2,
		AgentID:       utils.PtrUint(4),
		CheckInDate:   date(2025, 10, 14),
		CheckOutDate:  date(2025, 10, 16),
		Adults:        2,
		Children:      2,
		Infants:       1,
		MealPlan:      models.MealPlanBreakfast,
		RateTypeID:    utils.PtrUint(9),
		TotalAmount:   16000,
		PaymentStatus: models.PaymentPartial,
		Status:        models.StatusConfirmed,
		BookingSource: models.SourceAgent,
	}
}

func TestApplyPatch(t *testing.T) {
	t.Run("nil fields leave everything unchanged", func(t *testing.T) {
		existing := patchedReservation()
		merged := applyPatch(existing, ReservationPatch{})
		assert.Equal(t, existing, merged)
	})

	t.Run("children and infants patch back to zero", func(t *testing.T) {
		merged := applyPatch(patchedReservation(), ReservationPatch{
			Children: ptrInt(0),
			Infants:  ptrInt(0),
		})
		assert.Equal(t, 0, merged.Children)
		assert.Equal(t, 0, merged.Infants)
		assert.Equal(t, 2, merged.Adults, "untouched fields keep their values")
	})

	t.Run("agent and rate plan clear with zero", func(t *testing.T) {
		merged := applyPatch(patchedReservation(), ReservationPatch{
			AgentID:       utils.PtrUint(0),
			RateTypeID:    utils.PtrUint(0),
			BookingSource: ptrStr(models.SourceDirect),
		})
		assert.Nil(t, merged.AgentID)
		assert.Nil(t, merged.RateTypeID)
		assert.Equal(t, models.SourceDirect, merged.BookingSource)
	})

	t.Run("nonzero agent and rate plan replace", func(t *testing.T) {
		merged := applyPatch(patchedReservation(), ReservationPatch{
			AgentID:    utils.PtrUint(7),
			RateTypeID: utils.PtrUint(3),
		})
		assert.Equal(t, uint(7), *merged.AgentID)
		assert.Equal(t, uint(3), *merged.RateTypeID)
	})

	t.Run("dates and amounts replace", func(t *testing.T) {
		merged := applyPatch(patchedReservation(), ReservationPatch{
			CheckInDate:    ptrTime(date(2025, 11, 1)),
			CheckOutDate:   ptrTime(date(2025, 11, 3)),
			TotalAmount:    ptrFloat(9000),
			AdvancePayment: ptrFloat(0),
		})
		assert.Equal(t, date(2025, 11, 1), merged.CheckInDate)
		assert.Equal(t, date(2025, 11, 3), merged.CheckOutDate)
		assert.Equal(t, 9000.0, merged.TotalAmount)
		assert.Equal(t, 0.0, merged.AdvancePayment)
	})

	t.Run("status is never patched", func(t *testing.T) {
		existing := patchedReservation()
		merged := applyPatch(existing, ReservationPatch{
			MealPlan: ptrStr(models.MealPlanFullBoard),
		})
		assert.Equal(t, existing.Status, merged.Status)
	})
}
