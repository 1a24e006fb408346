package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps service errors to HTTP statuses: validation
// failures to 400, missing records to 404, conflicts (stale availability,
// duplicate keys, referenced records, bad transitions) to 409.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case services.IsValidationError(err):
		utils.JSONError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, services.ErrRoomConflict):
		utils.JSONError(c, http.StatusConflict, "room no longer available")

	case errors.Is(err, services.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "invalid status transition")

	case errors.Is(err, services.ErrReservationNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrGuestNotFound),
		errors.Is(err, services.ErrAgentNotFound),
		errors.Is(err, services.ErrRoomTypeNotFound),
		errors.Is(err, services.ErrRateTypeNotFound),
		errors.Is(err, services.ErrBillNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, services.ErrRoomReferenced),
		errors.Is(err, services.ErrGuestReferenced),
		errors.Is(err, services.ErrAgentReferenced),
		errors.Is(err, services.ErrRoomTypeReferenced),
		errors.Is(err, services.ErrDefaultRateType):
		utils.JSONError(c, http.StatusConflict, err.Error())

	case services.IsDuplicateEntry(err):
		utils.JSONError(c, http.StatusConflict, "duplicate entry")

	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}
