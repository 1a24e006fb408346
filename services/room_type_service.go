package services

import (
	"errors"
	"fmt"

	"hotel-frontdesk/models"

	"gorm.io/gorm"
)

var (
	ErrRoomTypeNotFound   = errors.New("room_type_not_found")
	ErrRoomTypeReferenced = errors.New("room_type_referenced_by_rooms")
	ErrRateTypeNotFound   = errors.New("rate_type_not_found")
	// The default rate plan of a room type cannot be deleted.
	ErrDefaultRateType = errors.New("default_rate_type_not_deletable")
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) Create(rt *models.RoomType) error {
	return s.DB.Create(rt).Error
}

func (s *RoomTypeService) GetAll() ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.Preload("RateTypes").Find(&types).Error
	return types, err
}

func (s *RoomTypeService) GetByID(id uint) (models.RoomType, error) {
	var rt models.RoomType
	err := s.DB.Preload("RateTypes").First(&rt, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rt, ErrRoomTypeNotFound
	}
	return rt, err
}

func (s *RoomTypeService) Update(id uint, patch map[string]interface{}) error {
	return s.DB.Model(&models.RoomType{}).Where("id = ?", id).Updates(patch).Error
}

func (s *RoomTypeService) Delete(id uint) error {
	var refs int64
	if err := s.DB.Model(&models.Room{}).Where("room_type_id = ?", id).Count(&refs).Error; err != nil {
		return fmt.Errorf("failed to check rooms for type %d: %w", id, err)
	}
	if refs > 0 {
		return ErrRoomTypeReferenced
	}

	result := s.DB.Delete(&models.RoomType{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room type: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomTypeNotFound
	}
	return nil
}

// ---------------------------------------------------------------
// Rate plans
// ---------------------------------------------------------------

func (s *RoomTypeService) ListRateTypes(roomTypeID uint) ([]models.RateType, error) {
	var rates []models.RateType
	err := s.DB.Where("room_type_id = ?", roomTypeID).Order("is_default DESC, code ASC").Find(&rates).Error
	return rates, err
}

// CreateRateType inserts a rate plan; marking it default demotes the previous
// default inside the same transaction so at most one remains.
func (s *RoomTypeService) CreateRateType(rate *models.RateType) error {
	if rate.RoomTypeID == 0 {
		return fmt.Errorf("validation: room type is required")
	}
	var rt models.RoomType
	if err := s.DB.First(&rt, rate.RoomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomTypeNotFound
		}
		return fmt.Errorf("db error checking room type: %w", err)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if rate.IsDefault {
			if err := clearDefaultRate(tx, rate.RoomTypeID, 0); err != nil {
				return err
			}
		}
		return tx.Create(rate).Error
	})
}

func (s *RoomTypeService) UpdateRateType(id uint, patch *models.RateType) error {
	var existing models.RateType
	if err := s.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRateTypeNotFound
		}
		return fmt.Errorf("db error checking rate plan: %w", err)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if patch.IsDefault && !existing.IsDefault {
			if err := clearDefaultRate(tx, existing.RoomTypeID, id); err != nil {
				return err
			}
		}
		return tx.Model(&existing).Updates(map[string]interface{}{
			"code":          patch.Code,
			"name":          patch.Name,
			"nightly_price": patch.NightlyPrice,
			"min_nights":    patch.MinNights,
			"max_nights":    patch.MaxNights,
			"valid_from":    patch.ValidFrom,
			"valid_to":      patch.ValidTo,
			"is_active":     patch.IsActive,
			"is_default":    patch.IsDefault,
		}).Error
	})
}

func (s *RoomTypeService) DeleteRateType(id uint) error {
	var rate models.RateType
	if err := s.DB.First(&rate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRateTypeNotFound
		}
		return fmt.Errorf("db error checking rate plan: %w", err)
	}
	if rate.IsDefault {
		return ErrDefaultRateType
	}
	return s.DB.Delete(&rate).Error
}

func clearDefaultRate(tx *gorm.DB, roomTypeID, excludeID uint) error {
	q := tx.Model(&models.RateType{}).Where("room_type_id = ? AND is_default = ?", roomTypeID, true)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Update("is_default", false).Error; err != nil {
		return fmt.Errorf("failed to clear previous default rate: %w", err)
	}
	return nil
}
