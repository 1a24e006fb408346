package services

import (
	"math"
	"time"

	"hotel-frontdesk/models"
)

// TaxRate is the fixed billing tax applied to item subtotals.
const TaxRate = 0.18

// Nights returns ceil((checkOut - checkIn) / 1 day), minimum 1.
func Nights(checkIn, checkOut time.Time) int {
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if n < 1 {
		n = 1
	}
	return n
}

// StayRate picks the nightly rate for a stay: the selected rate plan's price
// when one is chosen, else the room type's base price.
func StayRate(roomType models.RoomType, rate *models.RateType) float64 {
	if rate != nil {
		return rate.NightlyPrice
	}
	return roomType.BasePrice
}

// RoomTotal prices one room's stay: ratePerNight * nights.
func RoomTotal(ratePerNight float64, checkIn, checkOut time.Time) float64 {
	return round2(ratePerNight * float64(Nights(checkIn, checkOut)))
}

// SplitAdvance divides a lump-sum advance evenly across n rooms. The split is
// informational only, not a business allocation rule; the remainder cents go
// on the first share so the shares always sum back to the entered amount.
func SplitAdvance(advance float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	shares := make([]float64, n)
	even := round2(advance / float64(n))
	for i := range shares {
		shares[i] = even
	}
	shares[0] = round2(advance - even*float64(n-1))
	return shares
}

// BillTotals computes the billing formula: tax = 18% of subtotal, discount is
// a flat subtraction, total = subtotal + tax - discount, balance = total - paid.
func BillTotals(subtotal, discount, paid float64) (tax, total, balance float64, status string) {
	tax = round2(subtotal * TaxRate)
	total = round2(subtotal + tax - discount)
	balance = round2(total - paid)
	return tax, total, balance, DerivePaymentStatus(total, balance)
}

// DerivePaymentStatus: Paid when nothing is owed, Pending when nothing has
// been paid, Partial otherwise.
func DerivePaymentStatus(total, balance float64) string {
	switch {
	case balance <= 0:
		return models.PaymentPaid
	case balance == total:
		return models.PaymentPending
	default:
		return models.PaymentPartial
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
