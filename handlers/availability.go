package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"devseva/services/scheduling"
	"devseva/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes slot computation.
type AvailabilityHandler struct {
	Engine scheduling.SlotEngine
}

func NewAvailabilityHandler(engine scheduling.SlotEngine) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine}
}

// GetAvailableSlotsHandler handles
// GET /api/providers/:id/slots?from=YYYY-MM-DD&to=YYYY-MM-DD&duration=45.
// Duration is optional; the provider's configured session duration applies
// when it is absent. Read-only and safe to retry.
func (h *AvailabilityHandler) GetAvailableSlotsHandler(c *gin.Context) {
	providerID := c.Param("id")
	from := c.Query("from")
	to := c.Query("to")
	if from == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date range", "from query parameter is required (YYYY-MM-DD)")
		return
	}
	if to == "" {
		// Single-day query.
		to = from
	}

	duration := 0
	if raw := c.Query("duration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid duration", "duration must be a positive number of minutes")
			return
		}
		duration = parsed
	}

	slots, err := h.Engine.GetAvailableSlots(c.Request.Context(), providerID, from, to, duration)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrUnknownProvider):
			utils.JSONError(c, http.StatusNotFound, "Provider not found", providerID)
		case errors.Is(err, scheduling.ErrInvalidRange), errors.Is(err, scheduling.ErrInvalidDuration):
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		default:
			utils.GetLogger().Error("failed to compute available slots",
				zap.String("providerID", providerID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to compute available slots", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"providerId": providerID,
		"from":       from,
		"to":         to,
		"slots":      slots,
		"count":      len(slots),
	})
}
