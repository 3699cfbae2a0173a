package handlers

import (
	"net/http"

	"sparkle/middleware"
	"sparkle/models"
	"sparkle/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DraftHandler drives the booking wizard and final submission.
type DraftHandler struct {
	Drafts   booking.DraftService
	Bookings booking.BookingService
	Logger   *zap.Logger
}

// Start handles POST /api/drafts.
func (h *DraftHandler) Start(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	view, err := h.Drafts.Start(c.Request.Context(), middleware.CurrentSubject(c))
	if err != nil {
		respondError(c, logger, "failed to start booking", err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// Get handles GET /api/drafts/:id.
func (h *DraftHandler) Get(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	view, err := h.Drafts.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, "booking draft not found", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Apply handles PATCH /api/drafts/:id.
func (h *DraftHandler) Apply(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var patch models.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, logger, "invalid draft update", err)
		return
	}
	view, err := h.Drafts.Apply(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, logger, "failed to update booking draft", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Discard handles DELETE /api/drafts/:id.
func (h *DraftHandler) Discard(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	if err := h.Drafts.Discard(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, "failed to discard booking draft", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Submit handles POST /api/drafts/:id/submit for authenticated clients.
func (h *DraftHandler) Submit(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	b, err := h.Bookings.Submit(c.Request.Context(), c.Param("id"), middleware.CurrentSubject(c))
	if err != nil {
		respondError(c, logger, "failed to create booking", err)
		return
	}
	c.JSON(http.StatusCreated, b)
}
