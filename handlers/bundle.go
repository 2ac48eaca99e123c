package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the route handlers wired in main.
type HandlerBundle struct {
	// Dialogue endpoints.
	ProcessInput  gin.HandlerFunc
	SessionStatus gin.HandlerFunc
	ResetSession  gin.HandlerFunc
	SaveProfile   gin.HandlerFunc

	// Profile endpoints.
	Identify   gin.HandlerFunc
	GetProfile gin.HandlerFunc

	// Flight availability endpoint.
	FlightsLookup gin.HandlerFunc

	// Booking record endpoints.
	GetBooking    gin.HandlerFunc
	ListBookings  gin.HandlerFunc
	CancelBooking gin.HandlerFunc
}
