package handlers

import (
	"net/http"

	warningRepo "sparkle/database/repository/warning"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WarningHandler exposes recorded pricing warnings to admins.
type WarningHandler struct {
	Repo   warningRepo.WarningRepository
	Logger *zap.Logger
}

// List handles GET /api/admin/pricing/warnings.
func (h *WarningHandler) List(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	warnings, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respondError(c, logger, "failed to list pricing warnings", err)
		return
	}
	c.JSON(http.StatusOK, warnings)
}

// Dismiss handles DELETE /api/admin/pricing/warnings/:id.
func (h *WarningHandler) Dismiss(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	id := c.Param("id")
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, logger, "failed to dismiss pricing warning", err)
		return
	}
	logger.Info("Pricing warning dismissed", zap.String("id", id))
	c.Status(http.StatusNoContent)
}
