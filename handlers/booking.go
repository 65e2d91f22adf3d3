package handlers

import (
	"errors"
	"net/http"

	"resourcebooking/models"
	"resourcebooking/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	BookingService booking.BookingService
	Logger         *zap.Logger
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	id := c.Param("id")
	b, err := h.BookingService.Get(c.Request.Context(), id)
	if err != nil {
		internalError(c, logger, "Failed to fetch booking", err)
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListUserBookingsHandler handles GET /api/bookings/all?userId=.
func (h *BookingHandler) ListUserBookingsHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId query parameter is required"})
		return
	}
	bookings, err := h.BookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		internalError(c, logger, "Failed to list bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// StatisticHandler handles POST /api/bookings/statistic.
func (h *BookingHandler) StatisticHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var req models.BookingStatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	bookings, err := h.BookingService.ListByInstitutionAndDateRange(c.Request.Context(), req.InstitutionID, req.StartDate, req.EndDate)
	if err != nil {
		internalError(c, logger, "Failed to load booking statistics", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// PendingHandler handles POST /api/bookings/pending.
func (h *BookingHandler) PendingHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var req models.PendingBookingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	bookings, err := h.BookingService.ListPendingForUser(c.Request.Context(), req.UserID, req.CurrentDate)
	if err != nil {
		internalError(c, logger, "Failed to load pending bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ResourceBookingsHandler handles POST /api/bookings/resourcebookings.
func (h *BookingHandler) ResourceBookingsHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var req models.ResourceBookingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	bookings, err := h.BookingService.ListResourceBookingsOnDate(c.Request.Context(), req.ResourceID, req.Date)
	if err != nil {
		internalError(c, logger, "Failed to load resource bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking", "details": err.Error()})
		return
	}
	if err := h.BookingService.Create(c.Request.Context(), &b); err != nil {
		h.writeBookingError(c, logger, "Failed to create booking", err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateBookingHandler handles PUT /api/bookings/:id.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking", "details": err.Error()})
		return
	}
	outcome, err := h.BookingService.Update(c.Request.Context(), c.Param("id"), b)
	if err != nil {
		h.writeBookingError(c, logger, "Failed to update booking", err)
		return
	}
	respondOutcome(c, outcome, "Booking")
}

// DeleteBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	outcome, err := h.BookingService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, logger, "Failed to delete booking", err)
		return
	}
	respondOutcome(c, outcome, "Booking")
}

func (h *BookingHandler) writeBookingError(c *gin.Context, logger *zap.Logger, message string, err error) {
	switch {
	case errors.Is(err, booking.ErrInvalidTime):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		internalError(c, logger, message, err)
	}
}
