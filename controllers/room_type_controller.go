package controllers

import (
	"net/http"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

type RoomTypeController struct {
	RoomTypes *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypes: svc}
}

func (ctrl *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := ctrl.RoomTypes.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (ctrl *RoomTypeController) CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if rt.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}
	if err := ctrl.RoomTypes.Create(&rt); err != nil {
		if services.IsDuplicateEntry(err) {
			utils.JSONError(c, http.StatusConflict, "room type already exists")
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rt)
}

func (ctrl *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	delete(patch, "id")
	delete(patch, "rateTypes")
	if err := ctrl.RoomTypes.Update(id, patch); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room type updated"})
}

func (ctrl *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.RoomTypes.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room type deleted"})
}

// ---------------------------------------------------------------
// Rate plans
// ---------------------------------------------------------------

func (ctrl *RoomTypeController) GetRateTypes(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	rates, err := ctrl.RoomTypes.ListRateTypes(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rates)
}

func (ctrl *RoomTypeController) CreateRateType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var rate models.RateType
	if err := c.ShouldBindJSON(&rate); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	rate.RoomTypeID = id
	if err := ctrl.RoomTypes.CreateRateType(&rate); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rate)
}

func (ctrl *RoomTypeController) UpdateRateType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var rate models.RateType
	if err := c.ShouldBindJSON(&rate); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctrl.RoomTypes.UpdateRateType(id, &rate); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "rate plan updated"})
}

func (ctrl *RoomTypeController) DeleteRateType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.RoomTypes.DeleteRateType(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "rate plan deleted"})
}
