package handlers

import (
	"errors"
	"net/http"

	"drdhobi/models"
	"drdhobi/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves customer booking submission and the admin booking
// lifecycle endpoints.
type BookingHandler struct {
	BookingService booking.BookingService
}

// CreateBookingHandler handles POST /api/bookings. Works for both guests
// and signed-in customers; a valid token attaches the booking to the user.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	userID := c.GetString("userID")

	b, err := h.BookingService.Create(input, userID)
	if err != nil {
		if errors.Is(err, booking.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		logger.Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"bookingId": b.ID,
		"message":   "Booking created successfully",
	})
}

// GetMyBookingsHandler handles GET /api/bookings/mine.
func (h *BookingHandler) GetMyBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookings, err := h.BookingService.GetByUser(userID)
	if err != nil {
		logger.Error("Failed to fetch user bookings", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetAllBookingsHandler handles GET /api/admin/bookings with an optional
// ?status= filter.
func (h *BookingHandler) GetAllBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	status := c.Query("status")
	bookings, err := h.BookingService.GetAll(status)
	if err != nil {
		logger.Error("Failed to fetch bookings", zap.String("status", status), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatusHandler handles PATCH /api/admin/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.BookingService.UpdateStatus(id, req.Status); err != nil {
		logger.Error("Failed to update booking status",
			zap.String("id", id), zap.String("status", req.Status), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteBookingHandler handles DELETE /api/admin/bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.BookingService.Delete(id); err != nil {
		logger.Error("Failed to delete booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
