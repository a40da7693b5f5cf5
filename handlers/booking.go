package handlers

import (
	"errors"
	"net/http"
	"time"

	"devseva/models"
	"devseva/services/booking"
	"devseva/services/scheduling"
	"devseva/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the reservation lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Engine  scheduling.SlotEngine
	Logger  *zap.Logger
}

func NewBookingHandler(service booking.BookingService, engine scheduling.SlotEngine, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Engine: engine, Logger: logger}
}

// CheckBookableHandler handles POST /api/bookings/check. The verdict is
// advisory: creation re-validates under the provider lock.
func (h *BookingHandler) CheckBookableHandler(c *gin.Context) {
	var req models.BookingCheck
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	result, err := h.Engine.CheckBookable(c.Request.Context(), req)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	userID, ok := contextString(c, "userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	req.UserID = userID

	reservation, err := h.Service.CreateReservation(c.Request.Context(), req)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reservation": reservation})
}

// RescheduleBookingHandler handles PUT /api/bookings/:id/reschedule.
func (h *BookingHandler) RescheduleBookingHandler(c *gin.Context) {
	userID, ok := contextString(c, "userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body struct {
		Start time.Time `json:"start" binding:"required"`
		End   time.Time `json:"end" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	reservation, err := h.Service.RescheduleReservation(c.Request.Context(), c.Param("id"), userID, body.Start, body.End)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// CancelBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	userID, ok := contextString(c, "userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.Service.CancelReservation(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled"})
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	userID, ok := contextString(c, "userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	reservation, err := h.Service.GetReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	if reservation.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Reservation belongs to another user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// ListMyBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	userID, ok := contextString(c, "userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	reservations, err := h.Service.ListUserReservations(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list reservations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// ListProviderBookingsHandler handles GET /api/provider/reservations for the
// authenticated provider's agenda.
func (h *BookingHandler) ListProviderBookingsHandler(c *gin.Context) {
	providerID, ok := contextString(c, "providerID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Provider not authenticated"})
		return
	}

	from, to, err := parseAgendaRange(c.Query("from"), c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date range", err.Error())
		return
	}

	reservations, err := h.Service.ListProviderReservations(c.Request.Context(), providerID, from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list reservations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// UpdateBookingStatusHandler handles PUT /api/provider/reservations/:id/status
// for provider-side transitions (confirm, reject, complete).
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	providerID, ok := contextString(c, "providerID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Provider not authenticated"})
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	reservation, err := h.Service.GetReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	if reservation.ProviderID != providerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Reservation belongs to another provider"})
		return
	}

	if err := h.Service.UpdateReservationStatus(c.Request.Context(), reservation.ID, body.Status); err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var conflict *booking.ConflictError
	var transition *booking.TransitionError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Booking rejected", "reason": conflict.Reason})
	case errors.As(err, &transition):
		utils.JSONError(c, http.StatusConflict, "Illegal status transition", transition.Error())
	case errors.Is(err, booking.ErrLockBusy):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
	case errors.Is(err, booking.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		h.respondEngineError(c, err)
	}
}

func (h *BookingHandler) respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrUnknownProvider):
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
	case errors.Is(err, scheduling.ErrInvalidInterval), errors.Is(err, scheduling.ErrInvalidRange), errors.Is(err, scheduling.ErrInvalidDuration):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	default:
		h.Logger.Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Operation failed", err.Error())
	}
}

func contextString(c *gin.Context, key string) (string, bool) {
	value, exists := c.Get(key)
	if !exists {
		return "", false
	}
	s, ok := value.(string)
	return s, ok && s != ""
}

// parseAgendaRange interprets optional from/to dates for the provider
// agenda; defaults cover the coming week.
func parseAgendaRange(fromRaw, toRaw string) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, 7)

	var err error
	if fromRaw != "" {
		from, err = time.Parse(scheduling.DateLayout, fromRaw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if toRaw != "" {
		to, err = time.Parse(scheduling.DateLayout, toRaw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = to.AddDate(0, 0, 1)
	}
	return from, to, nil
}
