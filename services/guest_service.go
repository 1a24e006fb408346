package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-frontdesk/models"

	"gorm.io/gorm"
)

var ErrGuestReferenced = errors.New("guest_referenced_by_reservations")

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func validateGuest(g *models.Guest) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Phone = strings.TrimSpace(g.Phone)
	if g.Name == "" {
		return fmt.Errorf("validation: guest name is required")
	}
	if g.Phone == "" {
		return fmt.Errorf("validation: guest phone is required")
	}
	if g.Classification == "" {
		g.Classification = models.GuestClassRegular
	}
	if !models.IsValidGuestClassification(g.Classification) {
		return fmt.Errorf("validation: unknown classification %q", g.Classification)
	}
	return nil
}

func (s *GuestService) Create(guest *models.Guest) error {
	if err := validateGuest(guest); err != nil {
		return err
	}
	return s.DB.Create(guest).Error
}

// FindOrCreateByPhone deduplicates on the phone number: an existing guest with
// the same phone is reused (and its blank fields filled in) rather than
// inserting a duplicate directory entry.
func (s *GuestService) FindOrCreateByPhone(guest *models.Guest) error {
	if err := validateGuest(guest); err != nil {
		return err
	}

	var existing models.Guest
	err := s.DB.Where("phone = ?", guest.Phone).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.DB.Create(guest).Error
	}
	if err != nil {
		return fmt.Errorf("db error checking guest phone: %w", err)
	}

	patch := map[string]interface{}{}
	if existing.Email == "" && guest.Email != "" {
		patch["email"] = guest.Email
	}
	if existing.Address == "" && guest.Address != "" {
		patch["address"] = guest.Address
	}
	if existing.IDProofNumber == "" && guest.IDProofNumber != "" {
		patch["id_proof_type"] = guest.IDProofType
		patch["id_proof_number"] = guest.IDProofNumber
	}
	if len(patch) > 0 {
		if err := s.DB.Model(&existing).Updates(patch).Error; err != nil {
			return fmt.Errorf("failed to update existing guest: %w", err)
		}
	}
	*guest = existing
	return nil
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.Order("id DESC").Find(&guests).Error
	return guests, err
}

func (s *GuestService) GetByID(id uint) (models.Guest, error) {
	var guest models.Guest
	err := s.DB.First(&guest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return guest, ErrGuestNotFound
	}
	return guest, err
}

// Search matches name or phone, for the front-desk lookup box.
func (s *GuestService) Search(query string) ([]models.Guest, error) {
	q := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var guests []models.Guest
	err := s.DB.
		Where("LOWER(name) LIKE ? OR phone LIKE ?", q, q).
		Order("name ASC").
		Limit(50).
		Find(&guests).Error
	return guests, err
}

func (s *GuestService) Update(id uint, patch map[string]interface{}) error {
	delete(patch, "id")
	delete(patch, "total_bookings")
	delete(patch, "total_spent")
	delete(patch, "loyalty_points")
	return s.DB.Model(&models.Guest{}).Where("id = ?", id).Updates(patch).Error
}

func (s *GuestService) Delete(id uint) error {
	var refs int64
	if err := s.DB.Model(&models.Reservation{}).Where("guest_id = ?", id).Count(&refs).Error; err != nil {
		return fmt.Errorf("failed to check reservations for guest %d: %w", id, err)
	}
	if refs > 0 {
		return ErrGuestReferenced
	}

	result := s.DB.Delete(&models.Guest{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete guest: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGuestNotFound
	}
	return nil
}
