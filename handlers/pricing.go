package handlers

import (
	"net/http"

	"sparkle/models"
	"sparkle/services/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PricingHandler serves quotes and the admin rule endpoints.
type PricingHandler struct {
	Service pricing.PricingService
	Logger  *zap.Logger
}

// Quote handles POST /api/pricing/quote.
func (h *PricingHandler) Quote(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var cfg pricing.BookingConfiguration
	if err := c.ShouldBindJSON(&cfg); err != nil {
		badRequest(c, logger, "invalid booking configuration", err)
		return
	}
	res, err := h.Service.Quote(c.Request.Context(), cfg)
	if err != nil {
		respondError(c, logger, "failed to quote booking", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListRules handles GET /api/admin/pricing/rules?serviceType=.
func (h *PricingHandler) ListRules(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	rules, err := h.Service.ListRules(c.Request.Context(), c.Query("serviceType"))
	if err != nil {
		respondError(c, logger, "failed to list pricing rules", err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

// GetRule handles GET /api/admin/pricing/rules/:id.
func (h *PricingHandler) GetRule(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	rule, err := h.Service.GetRule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, "pricing rule not found", err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

// CreateRule handles POST /api/admin/pricing/rules.
func (h *PricingHandler) CreateRule(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var rule models.PricingRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		badRequest(c, logger, "invalid pricing rule", err)
		return
	}
	created, err := h.Service.CreateRule(c.Request.Context(), rule)
	if err != nil {
		respondError(c, logger, "failed to create pricing rule", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateRule handles PUT /api/admin/pricing/rules/:id.
func (h *PricingHandler) UpdateRule(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var rule models.PricingRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		badRequest(c, logger, "invalid pricing rule", err)
		return
	}
	updated, err := h.Service.UpdateRule(c.Request.Context(), c.Param("id"), rule)
	if err != nil {
		respondError(c, logger, "failed to update pricing rule", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteRule handles DELETE /api/admin/pricing/rules/:id.
func (h *PricingHandler) DeleteRule(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	if err := h.Service.DeleteRule(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, "failed to delete pricing rule", err)
		return
	}
	c.Status(http.StatusNoContent)
}
