package services

import (
	"errors"
	"fmt"

	"hotel-frontdesk/models"

	"gorm.io/gorm"
)

// ErrRoomReferenced means the room still has reservations pointing at it and
// cannot be deleted.
var ErrRoomReferenced = errors.New("room_referenced_by_reservations")

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	if room.Category == "" {
		room.Category = models.RoomCategoryMainBuilding
	}
	if !models.IsValidRoomCategory(room.Category) {
		return fmt.Errorf("validation: unknown category %q", room.Category)
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if !models.IsValidRoomStatus(room.Status) {
		return fmt.Errorf("validation: unknown status %q", room.Status)
	}
	if room.RoomTypeID != nil && *room.RoomTypeID != 0 {
		var rt models.RoomType
		if err := s.DB.First(&rt, *room.RoomTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("validation: room type %d not found", *room.RoomTypeID)
			}
			return fmt.Errorf("db error checking room type: %w", err)
		}
	}
	return s.DB.Create(room).Error
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Preload("RoomType").Order("room_number ASC").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := s.DB.Preload("RoomType").First(&room, id).Error
	return room, err
}

func (s *RoomService) Update(id uint, patch map[string]interface{}) error {
	if v, ok := patch["status"]; ok {
		status, _ := v.(string)
		if !models.IsValidRoomStatus(status) {
			return fmt.Errorf("validation: unknown status %q", status)
		}
	}
	if v, ok := patch["category"]; ok {
		category, _ := v.(string)
		if !models.IsValidRoomCategory(category) {
			return fmt.Errorf("validation: unknown category %q", category)
		}
	}
	return s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(patch).Error
}

// SetStatus mutates the administrative status, independent of reservations.
// Used for manual Blocked/Maintenance and the derived room-status tooling.
func (s *RoomService) SetStatus(id uint, status string) error {
	if !models.IsValidRoomStatus(status) {
		return fmt.Errorf("validation: unknown status %q", status)
	}
	result := s.DB.Model(&models.Room{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update room status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// Delete removes a room only when no reservation references it.
func (s *RoomService) Delete(id uint) error {
	var refs int64
	if err := s.DB.Model(&models.Reservation{}).Where("room_id = ?", id).Count(&refs).Error; err != nil {
		return fmt.Errorf("failed to check reservations for room %d: %w", id, err)
	}
	if refs > 0 {
		return ErrRoomReferenced
	}

	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
