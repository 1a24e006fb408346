package controllers

import (
	"fmt"
	"net/http"
	"time"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type reservationPayload struct {
	GuestID  uint   `json:"guestId" binding:"required"`
	RoomID   uint   `json:"roomId" binding:"required"`
	AgentID  *uint  `json:"agentId"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`

	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`

	MealPlan       string  `json:"mealPlan"`
	RateTypeID     *uint   `json:"rateTypeId"`
	TotalAmount    float64 `json:"totalAmount"`
	AdvancePayment float64 `json:"advancePayment"`

	Status        string `json:"status"`
	BookingSource string `json:"bookingSource"`
	DirectSource  string `json:"directSource"`
}

// Absent fields are left unchanged; agentId/rateTypeId take 0 to clear the
// reference.
type reservationPatchPayload struct {
	GuestID  *uint  `json:"guestId"`
	RoomID   *uint  `json:"roomId"`
	AgentID  *uint  `json:"agentId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`

	Adults   *int `json:"adults"`
	Children *int `json:"children"`
	Infants  *int `json:"infants"`

	MealPlan       *string  `json:"mealPlan"`
	RateTypeID     *uint    `json:"rateTypeId"`
	TotalAmount    *float64 `json:"totalAmount"`
	AdvancePayment *float64 `json:"advancePayment"`
	PaymentStatus  *string  `json:"paymentStatus"`

	BookingSource *string `json:"bookingSource"`
	DirectSource  *string `json:"directSource"`
}

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

type cellPayload struct {
	RoomID uint   `json:"roomId" binding:"required"`
	Date   string `json:"date" binding:"required"`
}

type composePayload struct {
	Cells []cellPayload `json:"cells" binding:"required"`
}

type slotPayload struct {
	RoomTypeID *uint `json:"roomTypeId"`
	RoomID     *uint `json:"roomId"`
	RateTypeID *uint `json:"rateTypeId"`
	Adults     int   `json:"adults"`
	Children   int   `json:"children"`
	Infants    int   `json:"infants"`
}

type groupBookingPayload struct {
	GuestID  uint   `json:"guestId" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`

	Slots []slotPayload `json:"slots" binding:"required"`

	MealPlan       string  `json:"mealPlan"`
	Status         string  `json:"status"`
	BookingSource  string  `json:"bookingSource"`
	DirectSource   string  `json:"directSource"`
	AgentID        *uint   `json:"agentId"`
	AdvancePayment float64 `json:"advancePayment"`
	AutoAssign     bool    `json:"autoAssign"`
}

// ---------------------------
// Controller
// ---------------------------

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: svc}
}

func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	list, err := ctrl.Reservations.GetAllWithRelations()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *ReservationController) GetReservationByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	res, err := ctrl.Reservations.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var payload reservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	checkIn, checkOut, ok := parseStayDates(c, payload.CheckIn, payload.CheckOut)
	if !ok {
		return
	}

	total := payload.TotalAmount
	if total == 0 {
		priced, err := ctrl.Reservations.PriceStay(payload.RoomID, payload.RateTypeID, checkIn, checkOut)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		total = priced
	}

	res := models.Reservation{
		GuestID:        payload.GuestID,
		RoomID:         payload.RoomID,
		AgentID:        payload.AgentID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		Adults:         payload.Adults,
		Children:       payload.Children,
		Infants:        payload.Infants,
		MealPlan:       payload.MealPlan,
		RateTypeID:     payload.RateTypeID,
		TotalAmount:    total,
		AdvancePayment: payload.AdvancePayment,
		PaymentStatus:  services.DerivePaymentStatus(total, total-payload.AdvancePayment),
		Status:         payload.Status,
		BookingSource:  payload.BookingSource,
		DirectSource:   payload.DirectSource,
	}
	if res.Adults == 0 {
		res.Adults = 1
	}

	if err := ctrl.Reservations.Create(&res); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctrl *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload reservationPatchPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	patch := services.ReservationPatch{
		GuestID:        payload.GuestID,
		RoomID:         payload.RoomID,
		AgentID:        payload.AgentID,
		Adults:         payload.Adults,
		Children:       payload.Children,
		Infants:        payload.Infants,
		MealPlan:       payload.MealPlan,
		RateTypeID:     payload.RateTypeID,
		TotalAmount:    payload.TotalAmount,
		AdvancePayment: payload.AdvancePayment,
		PaymentStatus:  payload.PaymentStatus,
		BookingSource:  payload.BookingSource,
		DirectSource:   payload.DirectSource,
	}
	if payload.CheckIn != "" {
		d, err := utils.ParseDate(payload.CheckIn)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "checkIn: "+err.Error())
			return
		}
		patch.CheckInDate = &d
	}
	if payload.CheckOut != "" {
		d, err := utils.ParseDate(payload.CheckOut)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "checkOut: "+err.Error())
			return
		}
		patch.CheckOutDate = &d
	}

	if err := ctrl.Reservations.Update(id, patch); err != nil {
		respondServiceError(c, err)
		return
	}

	res, err := ctrl.Reservations.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateStatus drives the lifecycle state machine (including explicit
// check-in and check-out actions).
func (ctrl *ReservationController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	res, err := ctrl.Reservations.UpdateStatus(id, payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.Reservations.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "reservation deleted"})
}

// ComposeIntents is the dry-run decomposition of a calendar cell selection
// into contiguous booking intents. Nothing is persisted.
func (ctrl *ReservationController) ComposeIntents(c *gin.Context) {
	var payload composePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	cells := make([]services.Cell, 0, len(payload.Cells))
	for _, pc := range payload.Cells {
		d, err := utils.ParseDate(pc.Date)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("room %d: %v", pc.RoomID, err))
			return
		}
		cells = append(cells, services.Cell{RoomID: pc.RoomID, Date: d})
	}

	c.JSON(http.StatusOK, gin.H{"intents": services.ComposeIntents(cells)})
}

// CreateGroupBooking submits a multi-room booking. Validation failures reject
// the whole submission with zero writes; per-room conflicts after submission
// starts are reported without rolling back created siblings.
func (ctrl *ReservationController) CreateGroupBooking(c *gin.Context) {
	var payload groupBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	checkIn, checkOut, ok := parseStayDates(c, payload.CheckIn, payload.CheckOut)
	if !ok {
		return
	}

	slots := make([]services.RoomSlot, len(payload.Slots))
	for i, sp := range payload.Slots {
		slots[i] = services.RoomSlot{
			RoomTypeID: sp.RoomTypeID,
			RoomID:     sp.RoomID,
			RateTypeID: sp.RateTypeID,
			Adults:     sp.Adults,
			Children:   sp.Children,
			Infants:    sp.Infants,
		}
	}

	result, err := ctrl.Reservations.CreateGroup(services.GroupBookingInput{
		GuestID:        payload.GuestID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Slots:          slots,
		MealPlan:       payload.MealPlan,
		Status:         payload.Status,
		BookingSource:  payload.BookingSource,
		DirectSource:   payload.DirectSource,
		AgentID:        payload.AgentID,
		AdvancePayment: payload.AdvancePayment,
		AutoAssign:     payload.AutoAssign,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	code := http.StatusCreated
	if len(result.Failed) > 0 {
		if len(result.Created) == 0 {
			code = http.StatusConflict
		} else {
			code = http.StatusOK
		}
	}
	c.JSON(code, gin.H{
		"message": fmt.Sprintf("created %d of %d bookings successfully", len(result.Created), result.Requested),
		"result":  result,
	})
}

// GetRelated returns the members of the reservation's logical booking group.
func (ctrl *ReservationController) GetRelated(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	res, err := ctrl.Reservations.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	related, err := ctrl.Reservations.FindRelated(res)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, related)
}

func (ctrl *ReservationController) CancelGroup(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	cancelled, failed, err := ctrl.Reservations.CancelGroup(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cancelled": cancelled, "failed": failed})
}

func (ctrl *ReservationController) DeleteGroup(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	deleted, failed, err := ctrl.Reservations.DeleteGroup(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": deleted, "failed": failed})
}

func parseStayDates(c *gin.Context, rawIn, rawOut string) (checkIn, checkOut time.Time, ok bool) {
	checkIn, err := utils.ParseDate(rawIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkIn: "+err.Error())
		return checkIn, checkOut, false
	}
	checkOut, err = utils.ParseDate(rawOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkOut: "+err.Error())
		return checkIn, checkOut, false
	}
	if !checkOut.After(checkIn) {
		utils.JSONError(c, http.StatusBadRequest, "checkOut must be after checkIn")
		return checkIn, checkOut, false
	}
	return checkIn, checkOut, true
}
