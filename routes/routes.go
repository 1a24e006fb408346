package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-frontdesk/controllers"
	"hotel-frontdesk/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	rc *controllers.RoomController,
	rtc *controllers.RoomTypeController,
	gc *controllers.GuestController,
	ac *controllers.AgentController,
	resc *controllers.ReservationController,
	avc *controllers.AvailabilityController,
	bc *controllers.BillController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:id", rc.GetRoomByID)
			rooms.POST("", rc.CreateRoom)
			rooms.PATCH("/:id", rc.UpdateRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.PATCH("/:id/status", rc.UpdateRoomStatus)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", rtc.GetRoomTypes)
			roomTypes.POST("", rtc.CreateRoomType)
			roomTypes.PATCH("/:id", rtc.UpdateRoomType)
			roomTypes.DELETE("/:id", rtc.DeleteRoomType)

			roomTypes.GET("/:id/rate-types", rtc.GetRateTypes)
			roomTypes.POST("/:id/rate-types", rtc.CreateRateType)
		}

		rateTypes := api.Group("/rate-types")
		{
			rateTypes.PUT("/:id", rtc.UpdateRateType)
			rateTypes.DELETE("/:id", rtc.DeleteRateType)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.GET("/:id", gc.GetGuestByID)
			guests.POST("", gc.CreateGuest)
			guests.PUT("/:id", gc.UpdateGuest)
			guests.DELETE("/:id", gc.DeleteGuest)
		}

		agents := api.Group("/agents")
		{
			agents.GET("", ac.GetAgents)
			agents.GET("/:id", ac.GetAgentByID)
			agents.POST("", ac.CreateAgent)
			agents.PUT("/:id", ac.UpdateAgent)
			agents.DELETE("/:id", ac.DeleteAgent)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", resc.GetReservations)
			reservations.GET("/:id", resc.GetReservationByID)
			reservations.POST("", resc.CreateReservation)
			reservations.PUT("/:id", resc.UpdateReservation)
			reservations.DELETE("/:id", resc.DeleteReservation)

			reservations.POST("/compose", resc.ComposeIntents)
			reservations.POST("/group", resc.CreateGroupBooking)
			reservations.POST("/:id/status", resc.UpdateStatus)
			reservations.GET("/:id/related", resc.GetRelated)
			reservations.POST("/:id/cancel-group", resc.CancelGroup)
			reservations.DELETE("/:id/group", resc.DeleteGroup)
		}

		availability := api.Group("/availability")
		{
			availability.GET("/rooms", avc.GetFreeRooms)
			availability.GET("/room-types", avc.GetRoomTypeAvailability)
		}

		bills := api.Group("/bills")
		{
			bills.GET("", bc.GetBills)
			bills.GET("/:id", bc.GetBillByID)
			bills.POST("", bc.CreateBill)
			bills.POST("/:id/payments", bc.RecordPayment)
			bills.DELETE("/:id", bc.DeleteBill)
		}
		api.GET("/reservations/:id/bills", bc.GetMasterBill)

		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/hotel", controllers.GetHotelSettings)
			settings.PUT("/hotel", controllers.UpdateHotelSettings)
		}
	}

	return r
}
