package handlers

import (
	"net/http"

	bookingRepo "aerovoice/database/repository/booking"
	"aerovoice/models"
	"aerovoice/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves completed reservations.
type BookingHandler struct {
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

func NewBookingHandler(bookings bookingRepo.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Logger: logger}
}

// GetBookingHandler returns a single booking by its booking ID.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	bookingID := c.Param("booking_id")
	booking, err := h.Bookings.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load booking", err.Error())
		return
	}
	if booking == nil {
		c.JSON(http.StatusNotFound, gin.H{"found": false, "message": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "booking": booking})
}

// ListBookingsHandler returns the booking history for a phone number, newest
// first.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone is required"})
		return
	}
	bookings, err := h.Bookings.GetByPhone(c.Request.Context(), phone)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load bookings", err.Error())
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"phone": phone, "bookings": bookings})
}

// CancelBookingHandler marks a booking cancelled.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	bookingID := c.Param("booking_id")
	if err := h.Bookings.UpdateStatus(c.Request.Context(), bookingID, "cancelled"); err != nil {
		h.Logger.Warn("Booking cancellation failed", zap.String("bookingId", bookingID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "booking_id": bookingID})
}
