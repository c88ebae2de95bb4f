package handlers

import (
	"errors"
	"net/http"

	"fletero/models"
	"fletero/services/scheduling"
	"fletero/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SchedulingHandler exposes the search/reserve/fleet endpoints.
type SchedulingHandler struct {
	Service scheduling.SchedulingService
	Logger  *zap.Logger
}

func NewSchedulingHandler(service scheduling.SchedulingService, logger *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{Service: service, Logger: logger}
}

// SearchHandler handles POST /api/calendar/search.
func (h *SchedulingHandler) SearchHandler(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.Search(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SearchMethodNotAllowed handles GET /api/calendar/search, which callers hit
// when they paste the endpoint into a browser.
func (h *SchedulingHandler) SearchMethodNotAllowed(c *gin.Context) {
	utils.JSONError(c, http.StatusMethodNotAllowed,
		"use POST /api/calendar/search with a JSON body: {date, originCity, volume, serviceType}", "")
}

// ReserveHandler handles POST /api/calendar/reserve.
func (h *SchedulingHandler) ReserveHandler(c *gin.Context) {
	var req models.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	reservation, err := h.Service.Reserve(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservation": reservation})
}

// FleetHandler handles GET /api/calendar/fleet.
func (h *SchedulingHandler) FleetHandler(c *gin.Context) {
	units, err := h.Service.Fleet(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fleet": units})
}

// respondError maps scheduling errors to HTTP statuses. Upstream calendar
// failures pass through verbatim as 500s.
func (h *SchedulingHandler) respondError(c *gin.Context, err error) {
	var validationErr *scheduling.ValidationError
	if errors.As(err, &validationErr) {
		utils.JSONError(c, http.StatusBadRequest, validationErr.Message, "")
		return
	}
	var conflictErr *scheduling.ConflictError
	if errors.As(err, &conflictErr) {
		utils.JSONError(c, http.StatusConflict, conflictErr.Message, "")
		return
	}
	h.Logger.Error("calendar service error", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, err.Error(), "")
}
