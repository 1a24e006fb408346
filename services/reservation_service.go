package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"hotel-frontdesk/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrReservationNotFound = errors.New("reservation_not_found")
	ErrRoomNotFound        = errors.New("room_not_found")
	ErrGuestNotFound       = errors.New("guest_not_found")

	// ErrRoomConflict is the authoritative server-side answer to a stale
	// client availability view: the room is no longer free for the range.
	ErrRoomConflict = errors.New("room_no_longer_available")

	ErrInvalidTransition = errors.New("invalid_status_transition")
)

// Reservations created together before booking_group_id existed are grouped by
// attribute match within this window of each other.
const relatedCreationWindow = 30 * time.Second

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// GetAllWithRelations returns every reservation with its guest, room (and
// type), agent and rate plan, newest first.
func (s *ReservationService) GetAllWithRelations() ([]models.Reservation, error) {
	var list []models.Reservation
	if err := s.DB.
		Preload("Guest").
		Preload("Room.RoomType").
		Preload("Agent").
		Preload("RateType").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	return list, nil
}

func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := s.DB.
		Preload("Guest").
		Preload("Room.RoomType").
		Preload("Agent").
		Preload("RateType").
		First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to retrieve reservation: %w", err)
	}
	return &res, nil
}

func validateReservation(res *models.Reservation) error {
	if res.GuestID == 0 {
		return fmt.Errorf("validation: guest is required")
	}
	if res.RoomID == 0 {
		return fmt.Errorf("validation: room is required")
	}
	if res.CheckInDate.IsZero() || res.CheckOutDate.IsZero() {
		return fmt.Errorf("validation: check-in and check-out dates are required")
	}
	if !res.CheckOutDate.After(res.CheckInDate) {
		return fmt.Errorf("validation: check-out must be after check-in")
	}
	if res.Adults < 1 {
		return fmt.Errorf("validation: at least one adult is required")
	}
	if res.Children < 0 || res.Infants < 0 {
		return fmt.Errorf("validation: occupant counts cannot be negative")
	}
	if res.Status == "" {
		res.Status = models.StatusConfirmed
	}
	if !models.IsValidReservationStatus(res.Status) {
		return fmt.Errorf("validation: unknown status %q", res.Status)
	}
	if res.MealPlan == "" {
		res.MealPlan = models.MealPlanNone
	}
	if !models.IsValidMealPlan(res.MealPlan) {
		return fmt.Errorf("validation: unknown meal plan %q", res.MealPlan)
	}
	if res.BookingSource == "" {
		res.BookingSource = models.SourceDirect
	}
	if res.BookingSource != models.SourceDirect && res.BookingSource != models.SourceAgent {
		return fmt.Errorf("validation: unknown booking source %q", res.BookingSource)
	}
	if res.BookingSource == models.SourceAgent && (res.AgentID == nil || *res.AgentID == 0) {
		return fmt.Errorf("validation: agent is required for agent-sourced bookings")
	}
	return nil
}

// countOverlapping counts occupying reservations on the room that overlap
// [checkIn, checkOut), excluding the given reservation id (0 = exclude none).
func countOverlapping(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeID uint) (int64, error) {
	var n int64
	q := tx.Model(&models.Reservation{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", OccupyingStatuses).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to check overlap: %w", err)
	}
	return n, nil
}

// Create validates the reservation and inserts it inside a transaction that
// locks the room row and re-runs the overlap check. The client-side snapshot
// check stays responsive; this check is the authoritative one, so a stale
// snapshot surfaces as ErrRoomConflict rather than a double booking.
func (s *ReservationService) Create(res *models.Reservation) error {
	if err := validateReservation(res); err != nil {
		return err
	}

	var guest models.Guest
	if err := s.DB.First(&guest, res.GuestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGuestNotFound
		}
		return fmt.Errorf("db error checking guest: %w", err)
	}

	if res.BookingGroupID == "" {
		res.BookingGroupID = uuid.NewString()
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, res.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("db error checking room %d: %w", res.RoomID, err)
		}

		if IsOccupyingStatus(res.Status) {
			if room.Status != models.RoomStatusAvailable && room.Status != models.RoomStatusReserved {
				return ErrRoomConflict
			}
			n, err := countOverlapping(tx, res.RoomID, res.CheckInDate, res.CheckOutDate, 0)
			if err != nil {
				return err
			}
			if n > 0 {
				return ErrRoomConflict
			}
		}

		if err := tx.Create(res).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}
		return nil
	})
}

// ReservationPatch is a partial update: nil fields are left unchanged, so a
// set pointer can take any value including zero. For AgentID and RateTypeID a
// pointer to 0 clears the reference. Status is not patchable here; lifecycle
// changes go through UpdateStatus.
type ReservationPatch struct {
	GuestID *uint
	RoomID  *uint
	AgentID *uint

	CheckInDate  *time.Time
	CheckOutDate *time.Time

	Adults   *int
	Children *int
	Infants  *int

	MealPlan   *string
	RateTypeID *uint

	TotalAmount    *float64
	AdvancePayment *float64
	PaymentStatus  *string

	BookingSource *string
	DirectSource  *string
}

func applyPatch(existing models.Reservation, p ReservationPatch) models.Reservation {
	merged := existing
	if p.GuestID != nil {
		merged.GuestID = *p.GuestID
	}
	if p.RoomID != nil {
		merged.RoomID = *p.RoomID
	}
	if p.AgentID != nil {
		if *p.AgentID == 0 {
			merged.AgentID = nil
		} else {
			merged.AgentID = p.AgentID
		}
	}
	if p.CheckInDate != nil {
		merged.CheckInDate = *p.CheckInDate
	}
	if p.CheckOutDate != nil {
		merged.CheckOutDate = *p.CheckOutDate
	}
	if p.Adults != nil {
		merged.Adults = *p.Adults
	}
	if p.Children != nil {
		merged.Children = *p.Children
	}
	if p.Infants != nil {
		merged.Infants = *p.Infants
	}
	if p.MealPlan != nil {
		merged.MealPlan = *p.MealPlan
	}
	if p.RateTypeID != nil {
		if *p.RateTypeID == 0 {
			merged.RateTypeID = nil
		} else {
			merged.RateTypeID = p.RateTypeID
		}
	}
	if p.TotalAmount != nil {
		merged.TotalAmount = *p.TotalAmount
	}
	if p.AdvancePayment != nil {
		merged.AdvancePayment = *p.AdvancePayment
	}
	if p.PaymentStatus != nil {
		merged.PaymentStatus = *p.PaymentStatus
	}
	if p.BookingSource != nil {
		merged.BookingSource = *p.BookingSource
	}
	if p.DirectSource != nil {
		merged.DirectSource = *p.DirectSource
	}
	merged.Status = existing.Status
	return merged
}

// Update applies a field patch. When dates, room or status change to an
// occupying combination, the overlap check runs again excluding the
// reservation itself.
func (s *ReservationService) Update(id uint, patch ReservationPatch) error {
	existing, err := s.GetByID(id)
	if err != nil {
		return err
	}

	merged := applyPatch(*existing, patch)
	if err := validateReservation(&merged); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if IsOccupyingStatus(merged.Status) {
			var room models.Room
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&room, merged.RoomID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrRoomNotFound
				}
				return fmt.Errorf("db error checking room %d: %w", merged.RoomID, err)
			}
			n, err := countOverlapping(tx, merged.RoomID, merged.CheckInDate, merged.CheckOutDate, id)
			if err != nil {
				return err
			}
			if n > 0 {
				return ErrRoomConflict
			}
		}

		if err := tx.Model(&models.Reservation{}).Where("id = ?", id).Updates(map[string]interface{}{
			"guest_id":        merged.GuestID,
			"room_id":         merged.RoomID,
			"agent_id":        merged.AgentID,
			"check_in_date":   merged.CheckInDate,
			"check_out_date":  merged.CheckOutDate,
			"adults":          merged.Adults,
			"children":        merged.Children,
			"infants":         merged.Infants,
			"meal_plan":       merged.MealPlan,
			"rate_type_id":    merged.RateTypeID,
			"total_amount":    merged.TotalAmount,
			"advance_payment": merged.AdvancePayment,
			"payment_status":  merged.PaymentStatus,
			"booking_source":  merged.BookingSource,
			"direct_source":   merged.DirectSource,
		}).Error; err != nil {
			return fmt.Errorf("failed to update reservation: %w", err)
		}
		return nil
	})
}

// UpdateStatus moves a reservation through the state machine and applies the
// room/guest side effects of check-in, check-out and cancellation. It does not
// re-validate date overlap: that was settled at booking time.
func (s *ReservationService) UpdateStatus(id uint, newStatus string) (*models.Reservation, error) {
	if !models.IsValidReservationStatus(newStatus) {
		return nil, fmt.Errorf("validation: unknown status %q", newStatus)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&res, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		if !CanTransition(res.Status, newStatus) {
			return ErrInvalidTransition
		}

		if err := tx.Model(&res).Update("status", newStatus).Error; err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}

		switch newStatus {
		case models.StatusCheckedIn:
			if err := setRoomStatus(tx, res.RoomID, models.RoomStatusOccupied); err != nil {
				return err
			}
		case models.StatusCheckedOut:
			if err := releaseRoom(tx, res.RoomID); err != nil {
				return err
			}
			if err := rollUpGuestStats(tx, &res); err != nil {
				return err
			}
		case models.StatusCancelled:
			if err := releaseRoom(tx, res.RoomID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func setRoomStatus(tx *gorm.DB, roomID uint, status string) error {
	if err := tx.Model(&models.Room{}).
		Where("id = ?", roomID).
		Update("status", status).Error; err != nil {
		return fmt.Errorf("failed to update room %d status: %w", roomID, err)
	}
	return nil
}

// releaseRoom returns an Occupied room to Available. Manually Blocked or
// Maintenance rooms stay as the front desk set them.
func releaseRoom(tx *gorm.DB, roomID uint) error {
	if err := tx.Model(&models.Room{}).
		Where("id = ? AND status = ?", roomID, models.RoomStatusOccupied).
		Update("status", models.RoomStatusAvailable).Error; err != nil {
		return fmt.Errorf("failed to release room %d: %w", roomID, err)
	}
	return nil
}

// rollUpGuestStats updates the guest's cumulative counters when a stay
// completes. Loyalty accrues 1 point per 100 currency units spent.
func rollUpGuestStats(tx *gorm.DB, res *models.Reservation) error {
	now := time.Now().UTC()
	if err := tx.Model(&models.Guest{}).
		Where("id = ?", res.GuestID).
		Updates(map[string]interface{}{
			"total_bookings": gorm.Expr("total_bookings + 1"),
			"total_spent":    gorm.Expr("total_spent + ?", res.TotalAmount),
			"loyalty_points": gorm.Expr("loyalty_points + ?", int(res.TotalAmount/100)),
			"last_visit":     now,
		}).Error; err != nil {
		return fmt.Errorf("failed to update guest stats: %w", err)
	}
	return nil
}

func (s *ReservationService) Delete(id uint) error {
	result := s.DB.Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// isRelated is the attribute-match rule for legacy rows without a
// booking_group_id: same guest, stay dates, source, meal plan and agent,
// created within relatedCreationWindow of each other (inclusive). The
// FindRelated query mirrors this; candidates are re-checked through it.
func isRelated(a, b *models.Reservation) bool {
	if a.GuestID != b.GuestID {
		return false
	}
	if !a.CheckInDate.Equal(b.CheckInDate) || !a.CheckOutDate.Equal(b.CheckOutDate) {
		return false
	}
	if a.BookingSource != b.BookingSource || a.MealPlan != b.MealPlan {
		return false
	}
	if (a.AgentID == nil) != (b.AgentID == nil) {
		return false
	}
	if a.AgentID != nil && *a.AgentID != *b.AgentID {
		return false
	}
	gap := a.CreatedAt.Sub(b.CreatedAt)
	if gap < 0 {
		gap = -gap
	}
	return gap <= relatedCreationWindow
}

// FindRelated returns the members of the reservation's logical multi-room
// booking, the given reservation included. Rows carrying a booking_group_id
// are grouped by that id alone; legacy rows fall back to the isRelated
// attribute heuristic.
func (s *ReservationService) FindRelated(res *models.Reservation) ([]models.Reservation, error) {
	if res.BookingGroupID != "" {
		var related []models.Reservation
		if err := s.DB.
			Preload("Room.RoomType").
			Preload("Guest").
			Where("booking_group_id = ?", res.BookingGroupID).
			Order("id ASC").
			Find(&related).Error; err != nil {
			return nil, fmt.Errorf("failed to find related reservations: %w", err)
		}
		return related, nil
	}

	windowStart := res.CreatedAt.Add(-relatedCreationWindow)
	windowEnd := res.CreatedAt.Add(relatedCreationWindow)
	q := s.DB.
		Preload("Room.RoomType").
		Preload("Guest").
		Where("guest_id = ?", res.GuestID).
		Where("check_in_date = ? AND check_out_date = ?", res.CheckInDate, res.CheckOutDate).
		Where("booking_source = ?", res.BookingSource).
		Where("meal_plan = ?", res.MealPlan).
		Where("created_at BETWEEN ? AND ?", windowStart, windowEnd)
	if res.AgentID != nil {
		q = q.Where("agent_id = ?", *res.AgentID)
	} else {
		q = q.Where("agent_id IS NULL")
	}
	var candidates []models.Reservation
	if err := q.Order("id ASC").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to find related reservations: %w", err)
	}

	related := make([]models.Reservation, 0, len(candidates))
	for i := range candidates {
		if isRelated(res, &candidates[i]) {
			related = append(related, candidates[i])
		}
	}
	return related, nil
}

// CancelGroup cancels every non-terminal member of the reservation's booking
// group, one update per row, and reports aggregate counts. Already-cancelled
// siblings are not an error; completed stays are skipped.
func (s *ReservationService) CancelGroup(id uint) (cancelled, failed int, err error) {
	res, err := s.GetByID(id)
	if err != nil {
		return 0, 0, err
	}
	related, err := s.FindRelated(res)
	if err != nil {
		return 0, 0, err
	}

	for i := range related {
		member := &related[i]
		if member.Status == models.StatusCancelled || member.Status == models.StatusCheckedOut {
			continue
		}
		if _, uErr := s.UpdateStatus(member.ID, models.StatusCancelled); uErr != nil {
			log.Printf("cancel group %s: reservation %d failed: %v", res.BookingGroupID, member.ID, uErr)
			failed++
			continue
		}
		cancelled++
	}
	return cancelled, failed, nil
}

// DeleteGroup deletes every member of the reservation's booking group, one
// call per row, no rollback across members.
func (s *ReservationService) DeleteGroup(id uint) (deleted, failed int, err error) {
	res, err := s.GetByID(id)
	if err != nil {
		return 0, 0, err
	}
	related, err := s.FindRelated(res)
	if err != nil {
		return 0, 0, err
	}

	for i := range related {
		if dErr := s.Delete(related[i].ID); dErr != nil {
			log.Printf("delete group %s: reservation %d failed: %v", res.BookingGroupID, related[i].ID, dErr)
			failed++
			continue
		}
		deleted++
	}
	return deleted, failed, nil
}
