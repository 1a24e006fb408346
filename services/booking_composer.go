package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"hotel-frontdesk/utils"
)

// Cell is one selected (room, date) square from the booking calendar.
type Cell struct {
	RoomID uint      `json:"roomId"`
	Date   time.Time `json:"date"`
}

// BookingIntent is a composed per-room stay, ready for pricing and submission.
// CheckOut is the day after the last occupied night (half-open).
type BookingIntent struct {
	RoomID   uint      `json:"roomId"`
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
	Nights   int       `json:"nights"`
}

// ComposeIntents groups a raw cell selection into contiguous per-room date
// ranges: one intent per run of consecutive days. Duplicate cells are ignored.
// Output is ordered by room id, then check-in date.
func ComposeIntents(cells []Cell) []BookingIntent {
	byRoom := make(map[uint][]time.Time)
	seen := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		key := Cell{RoomID: c.RoomID, Date: utils.DateOnly(c.Date)}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		byRoom[key.RoomID] = append(byRoom[key.RoomID], key.Date)
	}

	roomIDs := make([]uint, 0, len(byRoom))
	for id := range byRoom {
		roomIDs = append(roomIDs, id)
	}
	sort.Slice(roomIDs, func(i, j int) bool { return roomIDs[i] < roomIDs[j] })

	intents := make([]BookingIntent, 0, len(cells))
	for _, roomID := range roomIDs {
		dates := byRoom[roomID]
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

		start := dates[0]
		prev := dates[0]
		for _, d := range dates[1:] {
			if d.Sub(prev) > 24*time.Hour {
				intents = append(intents, rangeIntent(roomID, start, prev))
				start = d
			}
			prev = d
		}
		intents = append(intents, rangeIntent(roomID, start, prev))
	}
	return intents
}

func rangeIntent(roomID uint, firstNight, lastNight time.Time) BookingIntent {
	checkOut := lastNight.AddDate(0, 0, 1)
	return BookingIntent{
		RoomID:   roomID,
		CheckIn:  firstNight,
		CheckOut: checkOut,
		Nights:   Nights(firstNight, checkOut),
	}
}

// RoomSlot is one row of a multi-room booking form: the requested type, the
// assigned room, the chosen rate plan and the occupant counts.
type RoomSlot struct {
	RoomTypeID *uint `json:"roomTypeId"`
	RoomID     *uint `json:"roomId"`
	RateTypeID *uint `json:"rateTypeId"`

	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// ValidateSlots enforces the pre-submission rules: every slot has a room type,
// every slot has an assigned room, and no room is assigned to two slots. The
// returned error names the violated constraint; callers must make zero
// external calls when it is non-nil.
func ValidateSlots(slots []RoomSlot) error {
	if len(slots) == 0 {
		return fmt.Errorf("validation: no rooms selected")
	}
	assigned := make(map[uint]int, len(slots))
	for i, slot := range slots {
		if slot.RoomTypeID == nil || *slot.RoomTypeID == 0 {
			return fmt.Errorf("validation: room %d has no room type selected", i+1)
		}
		if slot.RoomID == nil || *slot.RoomID == 0 {
			return fmt.Errorf("validation: room %d has no room assigned", i+1)
		}
		if first, dup := assigned[*slot.RoomID]; dup {
			return fmt.Errorf("validation: cannot assign the same room multiple times (rooms %d and %d)", first+1, i+1)
		}
		assigned[*slot.RoomID] = i
	}
	return nil
}

// AutoAssignRooms fills in a room for every slot that has a type but no room
// yet: first-fit over the type's free rooms in room-number order, skipping
// rooms already claimed by a sibling slot for the same stay.
func AutoAssignRooms(slots []RoomSlot, snap *Snapshot, checkIn, checkOut time.Time) error {
	claimed := make(map[uint]bool, len(slots))
	for _, slot := range slots {
		if slot.RoomID != nil && *slot.RoomID != 0 {
			claimed[*slot.RoomID] = true
		}
	}

	for i := range slots {
		slot := &slots[i]
		if slot.RoomID != nil && *slot.RoomID != 0 {
			continue
		}
		if slot.RoomTypeID == nil || *slot.RoomTypeID == 0 {
			return fmt.Errorf("validation: room %d has no room type selected", i+1)
		}

		var pick *uint
		for _, room := range snap.FreeRoomsOfType(*slot.RoomTypeID) {
			if claimed[room.ID] {
				continue
			}
			if !snap.IsRoomFreeForRange(room.ID, checkIn, checkOut) {
				continue
			}
			id := room.ID
			pick = &id
			break
		}
		if pick == nil {
			return fmt.Errorf("validation: no available room of the requested type for room %d", i+1)
		}
		slot.RoomID = pick
		claimed[*pick] = true
	}
	return nil
}

// IsValidationError reports whether err is a pre-submission rule violation.
func IsValidationError(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "validation:")
}
