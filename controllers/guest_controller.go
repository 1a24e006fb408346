package controllers

import (
	"net/http"
	"strings"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	Guests *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{Guests: svc}
}

func (ctrl *GuestController) GetGuests(c *gin.Context) {
	if query := strings.TrimSpace(c.Query("q")); query != "" {
		guests, err := ctrl.Guests.Search(query)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, guests)
		return
	}

	guests, err := ctrl.Guests.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

func (ctrl *GuestController) GetGuestByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	guest, err := ctrl.Guests.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

func (ctrl *GuestController) CreateGuest(c *gin.Context) {
	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	// Phone is the natural key; the directory reuses an existing entry
	// instead of inserting a duplicate.
	if err := ctrl.Guests.FindOrCreateByPhone(&guest); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, guest)
}

func (ctrl *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctrl.Guests.Update(id, patch); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "guest updated"})
}

func (ctrl *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.Guests.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "guest deleted"})
}
