package handlers

import (
	"errors"
	"net/http"

	"devseva/models"
	"devseva/services/provider"
	"devseva/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes provider profile and schedule management.
type ProviderHandler struct {
	Service provider.ProviderService
}

func NewProviderHandler(service provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: service}
}

// GetProviderHandler handles GET /api/providers/:id (public profile).
func (h *ProviderHandler) GetProviderHandler(c *gin.Context) {
	p, err := h.Service.GetProvider(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": p})
}

// RegisterProviderHandler handles POST /api/providers.
func (h *ProviderHandler) RegisterProviderHandler(c *gin.Context) {
	var p models.Provider
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.RegisterProvider(c.Request.Context(), &p)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"provider": created})
}

// UpdateScheduleHandler handles PUT /api/provider/schedule. The schedule is
// validated in full before it replaces the stored one.
func (h *ProviderHandler) UpdateScheduleHandler(c *gin.Context) {
	providerID, ok := contextString(c, "providerID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Provider not authenticated"})
		return
	}

	var schedule models.WeeklySchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	if err := h.Service.UpdateWeeklySchedule(c.Request.Context(), providerID, schedule); err != nil {
		h.respondError(c, err)
		return
	}

	utils.GetLogger().Info("provider schedule updated", zap.String("providerID", providerID))
	c.JSON(http.StatusOK, gin.H{"message": "Schedule updated"})
}

// UpdatePolicyHandler handles PUT /api/provider/policy.
func (h *ProviderHandler) UpdatePolicyHandler(c *gin.Context) {
	providerID, ok := contextString(c, "providerID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Provider not authenticated"})
		return
	}

	var policy models.SessionPolicy
	if err := c.ShouldBindJSON(&policy); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	if err := h.Service.UpdateSessionPolicy(c.Request.Context(), providerID, policy); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session policy updated"})
}

// SetAvailabilityHandler handles PUT /api/provider/availability.
func (h *ProviderHandler) SetAvailabilityHandler(c *gin.Context) {
	providerID, ok := contextString(c, "providerID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Provider not authenticated"})
		return
	}

	var body struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	if err := h.Service.SetAvailability(c.Request.Context(), providerID, *body.Available); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}

func (h *ProviderHandler) respondError(c *gin.Context, err error) {
	var validation *provider.ValidationError
	switch {
	case errors.As(err, &validation):
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", validation.Error())
	case errors.Is(err, provider.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
	default:
		utils.GetLogger().Error("provider operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Operation failed", err.Error())
	}
}
