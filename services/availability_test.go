package services

import (
	"testing"
	"time"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func room(id uint, number string, typeID uint, status string) models.Room {
	r := models.Room{
		RoomTypeID: utils.PtrUint(typeID),
		RoomNumber: number,
		Status:     status,
	}
	r.ID = id
	return r
}

func reservation(roomID uint, status string, checkIn, checkOut time.Time) models.Reservation {
	return models.Reservation{
		RoomID:       roomID,
		Status:       status,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}
}

func TestIsRoomFreeForRange(t *testing.T) {
	snap := NewSnapshot(
		[]models.Room{room(101, "101", 1, models.RoomStatusAvailable)},
		[]models.Reservation{
			reservation(101, models.StatusConfirmed, date(2025, 10, 14), date(2025, 10, 16)),
		},
	)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{"same-day turnover on checkout day", date(2025, 10, 16), date(2025, 10, 18), true},
		{"overlapping one night", date(2025, 10, 15), date(2025, 10, 17), false},
		{"identical range", date(2025, 10, 14), date(2025, 10, 16), false},
		{"contained range", date(2025, 10, 14), date(2025, 10, 15), false},
		{"surrounding range", date(2025, 10, 13), date(2025, 10, 17), false},
		{"ends on existing check-in", date(2025, 10, 12), date(2025, 10, 14), true},
		{"fully before", date(2025, 10, 10), date(2025, 10, 12), true},
		{"fully after", date(2025, 10, 20), date(2025, 10, 22), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, snap.IsRoomFreeForRange(101, tc.checkIn, tc.checkOut))
		})
	}
}

func TestIsRoomFreeForRangeIdempotent(t *testing.T) {
	snap := NewSnapshot(
		[]models.Room{room(101, "101", 1, models.RoomStatusAvailable)},
		[]models.Reservation{
			reservation(101, models.StatusHold, date(2025, 10, 14), date(2025, 10, 16)),
		},
	)

	first := snap.IsRoomFreeForRange(101, date(2025, 10, 15), date(2025, 10, 17))
	second := snap.IsRoomFreeForRange(101, date(2025, 10, 15), date(2025, 10, 17))
	assert.Equal(t, first, second)
	assert.False(t, first)
}

func TestNonOccupyingStatusesDoNotBlock(t *testing.T) {
	for _, status := range []string{models.StatusCancelled, models.StatusCheckedOut, models.StatusInquiry, models.StatusTentative} {
		t.Run(status, func(t *testing.T) {
			snap := NewSnapshot(
				[]models.Room{room(101, "101", 1, models.RoomStatusAvailable)},
				[]models.Reservation{
					reservation(101, status, date(2025, 10, 14), date(2025, 10, 16)),
				},
			)
			assert.True(t, snap.IsRoomFreeForRange(101, date(2025, 10, 14), date(2025, 10, 16)),
				"a %s reservation must not occupy the room", status)
		})
	}
}

func TestOccupyingStatusesBlock(t *testing.T) {
	for _, status := range []string{models.StatusConfirmed, models.StatusCheckedIn, models.StatusHold} {
		t.Run(status, func(t *testing.T) {
			snap := NewSnapshot(
				[]models.Room{room(101, "101", 1, models.RoomStatusAvailable)},
				[]models.Reservation{
					reservation(101, status, date(2025, 10, 14), date(2025, 10, 16)),
				},
			)
			assert.False(t, snap.IsRoomFreeForRange(101, date(2025, 10, 14), date(2025, 10, 16)))
		})
	}
}

func TestAdministrativeStatusOverridesReservations(t *testing.T) {
	for _, status := range []string{models.RoomStatusBlocked, models.RoomStatusMaintenance, models.RoomStatusOccupied} {
		t.Run(status, func(t *testing.T) {
			snap := NewSnapshot([]models.Room{room(101, "101", 1, status)}, nil)
			assert.False(t, snap.IsRoomFreeForRange(101, date(2025, 10, 1), date(2025, 10, 2)),
				"a %s room must be unavailable even with no reservations", status)
		})
	}
}

func TestUnknownRoomFailsClosed(t *testing.T) {
	snap := NewSnapshot(nil, nil)
	assert.False(t, snap.IsRoomFreeForRange(999, date(2025, 10, 1), date(2025, 10, 2)))
	assert.False(t, snap.IsRoomAvailable(999, date(2025, 10, 1)))
}

func TestIsRoomAvailablePointCheck(t *testing.T) {
	snap := NewSnapshot(
		[]models.Room{room(101, "101", 1, models.RoomStatusAvailable)},
		[]models.Reservation{
			reservation(101, models.StatusConfirmed, date(2025, 10, 14), date(2025, 10, 16)),
		},
	)

	assert.False(t, snap.IsRoomAvailable(101, date(2025, 10, 14)), "check-in day is occupied")
	assert.False(t, snap.IsRoomAvailable(101, date(2025, 10, 15)))
	assert.True(t, snap.IsRoomAvailable(101, date(2025, 10, 16)), "checkout day is free for a new check-in")
	assert.True(t, snap.IsRoomAvailable(101, date(2025, 10, 13)))
}

func TestAvailableRoomsOfType(t *testing.T) {
	snap := NewSnapshot(
		[]models.Room{
			room(1, "101", 1, models.RoomStatusAvailable),
			room(2, "102", 1, models.RoomStatusAvailable),
			room(3, "103", 1, models.RoomStatusMaintenance),
			room(4, "201", 2, models.RoomStatusAvailable),
		},
		[]models.Reservation{
			reservation(1, models.StatusConfirmed, date(2025, 10, 14), date(2025, 10, 16)),
		},
	)

	available, total := snap.AvailableRoomsOfType(1, date(2025, 10, 15))
	assert.Equal(t, 1, available, "room 101 is booked, 103 is in maintenance")
	assert.Equal(t, 3, total)

	available, total = snap.AvailableRoomsOfType(1, date(2025, 10, 16))
	assert.Equal(t, 2, available, "room 101 frees up on checkout day")
	assert.Equal(t, 3, total)

	available, total = snap.AvailableRoomsOfType(2, date(2025, 10, 15))
	assert.Equal(t, 1, available)
	assert.Equal(t, 1, total)
}

func TestFreeRoomsOfType(t *testing.T) {
	snap := NewSnapshot(
		[]models.Room{
			room(3, "103", 1, models.RoomStatusAvailable),
			room(1, "101", 1, models.RoomStatusBlocked),
			room(2, "102", 1, models.RoomStatusAvailable),
			room(4, "201", 2, models.RoomStatusAvailable),
		},
		// Coarse filter: reservations must not matter here.
		[]models.Reservation{
			reservation(2, models.StatusConfirmed, date(2025, 10, 1), date(2025, 10, 30)),
		},
	)

	free := snap.FreeRoomsOfType(1)
	require.Len(t, free, 2)
	assert.Equal(t, "102", free[0].RoomNumber, "room-number order")
	assert.Equal(t, "103", free[1].RoomNumber)
}
