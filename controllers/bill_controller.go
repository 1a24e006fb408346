package controllers

import (
	"net/http"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

type billItemPayload struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

type billPayload struct {
	ReservationID *uint             `json:"reservationId"`
	GuestID       uint              `json:"guestId" binding:"required"`
	Items         []billItemPayload `json:"items" binding:"required"`
	Discount      float64           `json:"discount"`
	Paid          float64           `json:"paid"`
	PaymentMethod string            `json:"paymentMethod"`
}

type paymentPayload struct {
	Amount float64 `json:"amount" binding:"required"`
	Method string  `json:"method"`
}

type BillController struct {
	Bills *services.BillService
}

func NewBillController(svc *services.BillService) *BillController {
	return &BillController{Bills: svc}
}

func (ctrl *BillController) GetBills(c *gin.Context) {
	bills, err := ctrl.Bills.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (ctrl *BillController) GetBillByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	bill, err := ctrl.Bills.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (ctrl *BillController) CreateBill(c *gin.Context) {
	var payload billPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	bill := models.Bill{
		ReservationID: payload.ReservationID,
		GuestID:       payload.GuestID,
		Discount:      payload.Discount,
		Paid:          payload.Paid,
		PaymentMethod: payload.PaymentMethod,
		Items:         make([]models.BillItem, len(payload.Items)),
	}
	for i, item := range payload.Items {
		bill.Items[i] = models.BillItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	if err := ctrl.Bills.Create(&bill); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bill)
}

// GetMasterBill is the read-only aggregate view: every bill tied to one
// reservation plus the summed totals.
func (ctrl *BillController) GetMasterBill(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	bills, summary, err := ctrl.Bills.GetByReservation(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bills": bills, "summary": summary})
}

func (ctrl *BillController) RecordPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload paymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "amount is required")
		return
	}

	bill, err := ctrl.Bills.RecordPayment(id, payload.Amount, payload.Method)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (ctrl *BillController) DeleteBill(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.Bills.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "bill deleted"})
}
