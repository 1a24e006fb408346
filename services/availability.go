package services

import (
	"fmt"
	"sort"
	"time"

	"hotel-frontdesk/models"

	"gorm.io/gorm"
)

// OccupyingStatuses are the reservation statuses that block a room for their
// date range. Cancelled and Checked-out reservations free the room immediately.
var OccupyingStatuses = []string{
	models.StatusConfirmed,
	models.StatusCheckedIn,
	models.StatusHold,
}

func IsOccupyingStatus(s string) bool {
	for _, o := range OccupyingStatuses {
		if s == o {
			return true
		}
	}
	return false
}

// Snapshot is a read-only view of rooms and reservations fetched at one point
// in time. All availability answers are relative to the snapshot; callers
// refresh it by loading a new one. The snapshot never mutates anything.
type Snapshot struct {
	Rooms        []models.Room
	Reservations []models.Reservation

	roomsByID map[uint]int // index into Rooms
}

func NewSnapshot(rooms []models.Room, reservations []models.Reservation) *Snapshot {
	s := &Snapshot{
		Rooms:        rooms,
		Reservations: reservations,
		roomsByID:    make(map[uint]int, len(rooms)),
	}
	for i := range rooms {
		s.roomsByID[rooms[i].ID] = i
	}
	return s
}

func (s *Snapshot) RoomByID(id uint) (models.Room, bool) {
	i, ok := s.roomsByID[id]
	if !ok {
		return models.Room{}, false
	}
	return s.Rooms[i], true
}

// overlaps implements the half-open interval rule: checkout day is not
// occupied, so same-day turnover is allowed.
func overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// IsRoomFreeForRange reports whether the room's administrative status is
// Available and no occupying reservation overlaps [checkIn, checkOut).
// Unknown room ids are reported unavailable.
func (s *Snapshot) IsRoomFreeForRange(roomID uint, checkIn, checkOut time.Time) bool {
	room, ok := s.RoomByID(roomID)
	if !ok {
		return false
	}
	if room.Status != models.RoomStatusAvailable {
		return false
	}
	for i := range s.Reservations {
		r := &s.Reservations[i]
		if r.RoomID != roomID || !IsOccupyingStatus(r.Status) {
			continue
		}
		if overlaps(checkIn, checkOut, r.CheckInDate, r.CheckOutDate) {
			return false
		}
	}
	return true
}

// IsRoomAvailable is the single-day point check: date >= checkIn && date < checkOut
// on any occupying reservation makes the room unavailable. It reduces to the
// range check over [date, date+1d) so the two can never disagree.
func (s *Snapshot) IsRoomAvailable(roomID uint, date time.Time) bool {
	return s.IsRoomFreeForRange(roomID, date, date.AddDate(0, 0, 1))
}

// AvailableRoomsOfType counts rooms of the given type that are free on the
// given date, alongside the type's total room count.
func (s *Snapshot) AvailableRoomsOfType(roomTypeID uint, date time.Time) (available, total int) {
	for i := range s.Rooms {
		room := &s.Rooms[i]
		if room.RoomTypeID == nil || *room.RoomTypeID != roomTypeID {
			continue
		}
		total++
		if s.IsRoomAvailable(room.ID, date) {
			available++
		}
	}
	return available, total
}

// FreeRoomsOfType returns rooms of the given type whose administrative status
// is Available, in room-number order. This is the coarse catalog filter; the
// caller layers per-date occupancy checks on top for a selected range.
func (s *Snapshot) FreeRoomsOfType(roomTypeID uint) []models.Room {
	out := make([]models.Room, 0)
	for i := range s.Rooms {
		room := s.Rooms[i]
		if room.RoomTypeID == nil || *room.RoomTypeID != roomTypeID {
			continue
		}
		if room.Status != models.RoomStatusAvailable {
			continue
		}
		out = append(out, room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomNumber < out[j].RoomNumber })
	return out
}

// AvailabilityService loads snapshots from the database. This is the one
// fetch/refresh step; everything downstream of it is a pure query.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

func (s *AvailabilityService) LoadSnapshot() (*Snapshot, error) {
	var rooms []models.Room
	if err := s.DB.Preload("RoomType").Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	var reservations []models.Reservation
	if err := s.DB.Where("status IN ?", OccupyingStatuses).Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	return NewSnapshot(rooms, reservations), nil
}
