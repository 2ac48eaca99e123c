package routes

import (
	"net/http"
	"time"

	"aerovoice/handlers"
	"aerovoice/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDialogueRoutes registers the conversation endpoints.
func RegisterDialogueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/nlp")
	{
		api.POST("/process", hb.ProcessInput)
		api.GET("/status", hb.SessionStatus)
		api.POST("/reset", hb.ResetSession)
		api.POST("/save-profile", hb.SaveProfile)
		api.POST("/identify", hb.Identify)
		api.GET("/profile/:user_id", hb.GetProfile)
	}
}

// RegisterFlightRoutes registers the availability lookup endpoint.
func RegisterFlightRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/flights", hb.FlightsLookup)
	r.POST("/api/flights", hb.FlightsLookup)
}

// RegisterBookingRoutes registers the booking record endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.ListBookings)
		api.GET("/:booking_id", hb.GetBooking)
		api.POST("/:booking_id/cancel", hb.CancelBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "aerovoice",
			"checks":  utils.GetHealthStatus(),
		})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "Voice Airline Booking API is running",
			"service": "aerovoice",
			"version": "1.0.0",
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDialogueRoutes(r, hb)
	RegisterFlightRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
