package services

import (
	"testing"
	"time"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"three nights", "2025-10-14", "2025-10-17", 3},
		{"one night", "2025-10-14", "2025-10-15", 1},
		{"same day floors to one", "2025-10-14", "2025-10-14", 1},
		{"reversed floors to one", "2025-10-17", "2025-10-14", 1},
		{"across month boundary", "2025-10-30", "2025-11-02", 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := mustDate(t, tc.checkIn)
			out := mustDate(t, tc.checkOut)
			assert.Equal(t, tc.want, Nights(in, out))
		})
	}
}

func TestStayRate(t *testing.T) {
	deluxe := models.RoomType{Name: "Deluxe", BasePrice: 8000}
	seasonal := &models.RateType{Code: "SEA", NightlyPrice: 9500}

	assert.Equal(t, 8000.0, StayRate(deluxe, nil), "base price when no rate plan chosen")
	assert.Equal(t, 9500.0, StayRate(deluxe, seasonal))
}

func TestRoomTotal(t *testing.T) {
	in := mustDate(t, "2025-10-14")
	out := mustDate(t, "2025-10-17")

	total := RoomTotal(8000, in, out)
	assert.Equal(t, 24000.0, total)

	// Same inputs always price the same.
	assert.Equal(t, total, RoomTotal(8000, in, out))
}

func TestSplitAdvance(t *testing.T) {
	t.Run("even split across two rooms", func(t *testing.T) {
		shares := SplitAdvance(10000, 2)
		require.Len(t, shares, 2)
		assert.Equal(t, 5000.0, shares[0])
		assert.Equal(t, 5000.0, shares[1])
	})

	t.Run("remainder cents go on the first share", func(t *testing.T) {
		shares := SplitAdvance(100, 3)
		require.Len(t, shares, 3)
		assert.Equal(t, 33.34, shares[0])
		assert.Equal(t, 33.33, shares[1])
		assert.Equal(t, 33.33, shares[2])
	})

	t.Run("shares sum back to the advance", func(t *testing.T) {
		for _, n := range []int{1, 2, 3, 7} {
			shares := SplitAdvance(999.99, n)
			sum := 0.0
			for _, s := range shares {
				sum += s
			}
			assert.InDelta(t, 999.99, sum, 0.001, "n=%d", n)
		}
	})

	t.Run("zero rooms", func(t *testing.T) {
		assert.Nil(t, SplitAdvance(100, 0))
	})
}

func TestBillTotals(t *testing.T) {
	tax, total, balance, status := BillTotals(1000, 0, 0)
	assert.Equal(t, 180.0, tax)
	assert.Equal(t, 1180.0, total)
	assert.Equal(t, 1180.0, balance)
	assert.Equal(t, models.PaymentPending, status)

	tax, total, balance, status = BillTotals(1000, 100, 500)
	assert.Equal(t, 180.0, tax)
	assert.Equal(t, 1080.0, total)
	assert.Equal(t, 580.0, balance)
	assert.Equal(t, models.PaymentPartial, status)

	_, _, balance, status = BillTotals(1000, 0, 1180)
	assert.Equal(t, 0.0, balance)
	assert.Equal(t, models.PaymentPaid, status)
}

func TestDerivePaymentStatus(t *testing.T) {
	assert.Equal(t, models.PaymentPaid, DerivePaymentStatus(1000, 0))
	assert.Equal(t, models.PaymentPaid, DerivePaymentStatus(1000, -50), "overpayment still reads Paid")
	assert.Equal(t, models.PaymentPending, DerivePaymentStatus(1000, 1000))
	assert.Equal(t, models.PaymentPartial, DerivePaymentStatus(1000, 400))
}

func TestMultiRoomStayPricing(t *testing.T) {
	// Two Deluxe rooms at 8000/night for three nights with a 10000 advance.
	in := mustDate(t, "2025-10-14")
	out := mustDate(t, "2025-10-17")

	perRoom := RoomTotal(8000, in, out)
	assert.Equal(t, 24000.0, perRoom)

	shares := SplitAdvance(10000, 2)
	require.Len(t, shares, 2)
	assert.Equal(t, 5000.0, shares[0])

	assert.Equal(t, models.PaymentPartial, DerivePaymentStatus(perRoom, perRoom-shares[0]))
}
