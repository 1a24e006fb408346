package services

import (
	"testing"
	"time"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeIntentsSplitsOnGap(t *testing.T) {
	cells := []Cell{
		{RoomID: 7, Date: date(2025, 10, 1)},
		{RoomID: 7, Date: date(2025, 10, 2)},
		{RoomID: 7, Date: date(2025, 10, 3)},
		{RoomID: 7, Date: date(2025, 10, 5)},
	}

	intents := ComposeIntents(cells)
	require.Len(t, intents, 2)

	assert.Equal(t, uint(7), intents[0].RoomID)
	assert.Equal(t, date(2025, 10, 1), intents[0].CheckIn)
	assert.Equal(t, date(2025, 10, 4), intents[0].CheckOut)
	assert.Equal(t, 3, intents[0].Nights)

	assert.Equal(t, date(2025, 10, 5), intents[1].CheckIn)
	assert.Equal(t, date(2025, 10, 6), intents[1].CheckOut)
	assert.Equal(t, 1, intents[1].Nights)
}

func TestComposeIntentsUnsortedAndDuplicates(t *testing.T) {
	cells := []Cell{
		{RoomID: 2, Date: date(2025, 11, 11)},
		{RoomID: 2, Date: date(2025, 11, 10)},
		{RoomID: 2, Date: date(2025, 11, 11)},
		{RoomID: 1, Date: date(2025, 11, 20)},
	}

	intents := ComposeIntents(cells)
	require.Len(t, intents, 2)

	assert.Equal(t, uint(1), intents[0].RoomID, "ordered by room id")
	assert.Equal(t, 1, intents[0].Nights)

	assert.Equal(t, uint(2), intents[1].RoomID)
	assert.Equal(t, date(2025, 11, 10), intents[1].CheckIn)
	assert.Equal(t, date(2025, 11, 12), intents[1].CheckOut)
	assert.Equal(t, 2, intents[1].Nights)
}

func TestComposeIntentsRoundTrip(t *testing.T) {
	cells := []Cell{
		{RoomID: 3, Date: date(2026, 1, 5)},
		{RoomID: 3, Date: date(2026, 1, 6)},
		{RoomID: 3, Date: date(2026, 1, 9)},
		{RoomID: 4, Date: date(2026, 1, 5)},
	}

	covered := make(map[Cell]bool)
	totalNights := 0
	for _, intent := range ComposeIntents(cells) {
		totalNights += intent.Nights
		for d := intent.CheckIn; d.Before(intent.CheckOut); d = d.AddDate(0, 0, 1) {
			covered[Cell{RoomID: intent.RoomID, Date: d}] = true
		}
	}

	assert.Equal(t, len(cells), totalNights, "every selected night is covered exactly once")
	for _, c := range cells {
		assert.True(t, covered[c], "cell %v must be covered", c)
	}
	assert.Len(t, covered, len(cells))
}

func TestComposeIntentsEmpty(t *testing.T) {
	assert.Empty(t, ComposeIntents(nil))
}

func slot(roomTypeID, roomID uint) RoomSlot {
	s := RoomSlot{Adults: 1}
	if roomTypeID != 0 {
		s.RoomTypeID = utils.PtrUint(roomTypeID)
	}
	if roomID != 0 {
		s.RoomID = utils.PtrUint(roomID)
	}
	return s
}

func TestValidateSlots(t *testing.T) {
	tests := []struct {
		name    string
		slots   []RoomSlot
		wantErr string
	}{
		{"empty selection", nil, "validation: no rooms selected"},
		{"missing room type", []RoomSlot{slot(0, 5)}, "validation: room 1 has no room type selected"},
		{"missing room", []RoomSlot{slot(1, 7), slot(1, 0)}, "validation: room 2 has no room assigned"},
		{"duplicate room", []RoomSlot{slot(1, 7), slot(2, 8), slot(1, 7)}, "validation: cannot assign the same room multiple times (rooms 1 and 3)"},
		{"valid", []RoomSlot{slot(1, 7), slot(1, 8)}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSlots(tc.slots)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestAutoAssignRoomsFirstFit(t *testing.T) {
	snap := NewSnapshot(
		[]models.Room{
			room(3, "103", 1, models.RoomStatusAvailable),
			room(1, "101", 1, models.RoomStatusAvailable),
			room(2, "102", 1, models.RoomStatusAvailable),
		},
		[]models.Reservation{
			// 101 is taken for the requested range.
			reservation(1, models.StatusConfirmed, date(2025, 12, 1), date(2025, 12, 5)),
		},
	)

	slots := []RoomSlot{slot(1, 0), slot(1, 0)}
	err := AutoAssignRooms(slots, snap, date(2025, 12, 2), date(2025, 12, 4))
	require.NoError(t, err)

	require.NotNil(t, slots[0].RoomID)
	require.NotNil(t, slots[1].RoomID)
	assert.Equal(t, uint(2), *slots[0].RoomID, "lowest free room number first")
	assert.Equal(t, uint(3), *slots[1].RoomID, "sibling slot claims the next room")
}

func TestAutoAssignRoomsSkipsManuallyClaimed(t *testing.T) {
	snap := NewSnapshot(
		[]models.Room{
			room(1, "101", 1, models.RoomStatusAvailable),
			room(2, "102", 1, models.RoomStatusAvailable),
		},
		nil,
	)

	slots := []RoomSlot{slot(1, 1), slot(1, 0)}
	err := AutoAssignRooms(slots, snap, date(2025, 12, 1), date(2025, 12, 2))
	require.NoError(t, err)
	assert.Equal(t, uint(2), *slots[1].RoomID)
}

func TestAutoAssignRoomsExhausted(t *testing.T) {
	snap := NewSnapshot(
		[]models.Room{room(1, "101", 1, models.RoomStatusMaintenance)},
		nil,
	)

	slots := []RoomSlot{slot(1, 0)}
	err := AutoAssignRooms(slots, snap, date(2025, 12, 1), date(2025, 12, 2))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestComposeIntentsNormalizesTimestamps(t *testing.T) {
	// Cells arriving with a time-of-day component collapse to the same night.
	cells := []Cell{
		{RoomID: 9, Date: time.Date(2025, 10, 1, 14, 30, 0, 0, time.UTC)},
		{RoomID: 9, Date: date(2025, 10, 1)},
	}
	intents := ComposeIntents(cells)
	require.Len(t, intents, 1)
	assert.Equal(t, 1, intents[0].Nights)
}
