package controllers

import (
	"net/http"
	"strconv"
	"time"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	Availability *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{Availability: svc}
}

// GetFreeRooms answers "which rooms are free?" for a single date or a
// [check_in, check_out) range, optionally narrowed to one room type.
// Query params: date=YYYY-MM-DD or check_in=&check_out=, room_type_id=.
func (ctrl *AvailabilityController) GetFreeRooms(c *gin.Context) {
	checkIn, checkOut, ok := parseRangeQuery(c)
	if !ok {
		return
	}

	snap, err := ctrl.Availability.LoadSnapshot()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var typeID uint
	if raw := c.Query("room_type_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid room_type_id")
			return
		}
		typeID = uint(v)
	}

	free := make([]models.Room, 0)
	for _, room := range snap.Rooms {
		if typeID != 0 && (room.RoomTypeID == nil || *room.RoomTypeID != typeID) {
			continue
		}
		if snap.IsRoomFreeForRange(room.ID, checkIn, checkOut) {
			free = append(free, room)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"checkIn":  checkIn.Format(utils.DateLayout),
		"checkOut": checkOut.Format(utils.DateLayout),
		"rooms":    free,
	})
}

type roomTypeAvailability struct {
	RoomTypeID uint   `json:"roomTypeId"`
	Name       string `json:"name"`
	Available  int    `json:"available"`
	Total      int    `json:"total"`
}

// GetRoomTypeAvailability returns available/total room counts per room type
// for one date. Query param: date=YYYY-MM-DD.
func (ctrl *AvailabilityController) GetRoomTypeAvailability(c *gin.Context) {
	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := ctrl.Availability.LoadSnapshot()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	seen := make(map[uint]bool)
	out := make([]roomTypeAvailability, 0)
	for _, room := range snap.Rooms {
		if room.RoomTypeID == nil || seen[*room.RoomTypeID] {
			continue
		}
		seen[*room.RoomTypeID] = true
		available, total := snap.AvailableRoomsOfType(*room.RoomTypeID, date)
		out = append(out, roomTypeAvailability{
			RoomTypeID: *room.RoomTypeID,
			Name:       room.RoomType.Name,
			Available:  available,
			Total:      total,
		})
	}
	c.JSON(http.StatusOK, gin.H{"date": date.Format(utils.DateLayout), "roomTypes": out})
}

// parseRangeQuery reads either ?date= (one night) or ?check_in=&check_out=.
func parseRangeQuery(c *gin.Context) (checkIn, checkOut time.Time, ok bool) {
	if raw := c.Query("date"); raw != "" {
		d, err := utils.ParseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return checkIn, checkOut, false
		}
		return d, d.AddDate(0, 0, 1), true
	}

	in, err := utils.ParseDate(c.Query("check_in"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "check_in: "+err.Error())
		return checkIn, checkOut, false
	}
	out, err := utils.ParseDate(c.Query("check_out"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "check_out: "+err.Error())
		return checkIn, checkOut, false
	}
	if !out.After(in) {
		utils.JSONError(c, http.StatusBadRequest, "check_out must be after check_in")
		return checkIn, checkOut, false
	}
	return in, out, true
}
