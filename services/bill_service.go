package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"

	"gorm.io/gorm"
)

var ErrBillNotFound = errors.New("bill_not_found")

type BillService struct {
	DB *gorm.DB
}

func NewBillService(db *gorm.DB) *BillService {
	return &BillService{DB: db}
}

// recalc recomputes item amounts and the bill totals in place.
func recalc(bill *models.Bill) {
	var subtotal float64
	for i := range bill.Items {
		item := &bill.Items[i]
		if item.Quantity <= 0 {
			item.Quantity = 1
		}
		item.Amount = item.UnitPrice * float64(item.Quantity)
		subtotal += item.Amount
	}
	bill.Subtotal = subtotal
	bill.Tax, bill.Total, bill.Balance, bill.PaymentStatus = BillTotals(subtotal, bill.Discount, bill.Paid)
}

// Create inserts a bill with its items; totals are computed server-side, the
// caller's figures are ignored. Bill numbers retry on unique collision.
func (s *BillService) Create(bill *models.Bill) error {
	if bill.GuestID == 0 {
		return fmt.Errorf("validation: guest is required")
	}
	if len(bill.Items) == 0 {
		return fmt.Errorf("validation: at least one bill item is required")
	}
	if bill.Discount < 0 {
		return fmt.Errorf("validation: discount cannot be negative")
	}
	recalc(bill)

	maxRetries := 5
	var createErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		number, err := utils.GenerateBillNumber()
		if err != nil {
			return fmt.Errorf("failed to generate bill number: %w", err)
		}
		bill.Number = number

		createErr = s.DB.Create(bill).Error
		if createErr == nil {
			return nil
		}
		if isDuplicateEntry(createErr) {
			log.Printf("bill number collision (attempt %d), retrying", attempt+1)
			continue
		}
		return fmt.Errorf("failed to create bill: %w", createErr)
	}
	return fmt.Errorf("failed to create bill after retries: %w", createErr)
}

func (s *BillService) GetAll() ([]models.Bill, error) {
	var bills []models.Bill
	err := s.DB.Preload("Items").Preload("Guest").Order("created_at DESC").Find(&bills).Error
	return bills, err
}

func (s *BillService) GetByID(id uint) (models.Bill, error) {
	var bill models.Bill
	err := s.DB.Preload("Items").Preload("Guest").First(&bill, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return bill, ErrBillNotFound
	}
	return bill, err
}

// GetByReservation returns all bills tied to one reservation, with the summed
// totals (the read-only master-bill view).
func (s *BillService) GetByReservation(reservationID uint) ([]models.Bill, MasterBillSummary, error) {
	var bills []models.Bill
	if err := s.DB.
		Preload("Items").
		Where("reservation_id = ?", reservationID).
		Order("created_at ASC").
		Find(&bills).Error; err != nil {
		return nil, MasterBillSummary{}, err
	}

	var summary MasterBillSummary
	for _, b := range bills {
		summary.Subtotal += b.Subtotal
		summary.Tax += b.Tax
		summary.Discount += b.Discount
		summary.Total += b.Total
		summary.Paid += b.Paid
		summary.Balance += b.Balance
	}
	return bills, summary, nil
}

type MasterBillSummary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
	Paid     float64 `json:"paid"`
	Balance  float64 `json:"balance"`
}

// RecordPayment adds a payment against the bill and re-derives its status.
func (s *BillService) RecordPayment(id uint, amount float64, method string) (models.Bill, error) {
	if amount <= 0 {
		return models.Bill{}, fmt.Errorf("validation: payment amount must be positive")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var bill models.Bill
		if err := tx.Preload("Items").First(&bill, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBillNotFound
			}
			return err
		}
		bill.Paid += amount
		if strings.TrimSpace(method) != "" {
			bill.PaymentMethod = method
		}
		recalc(&bill)
		return tx.Model(&bill).Updates(map[string]interface{}{
			"paid":           bill.Paid,
			"balance":        bill.Balance,
			"payment_status": bill.PaymentStatus,
			"payment_method": bill.PaymentMethod,
		}).Error
	})
	if err != nil {
		return models.Bill{}, err
	}
	return s.GetByID(id)
}

func (s *BillService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bill_id = ?", id).Delete(&models.BillItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete bill items: %w", err)
		}
		result := tx.Delete(&models.Bill{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete bill: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrBillNotFound
		}
		return nil
	})
}
