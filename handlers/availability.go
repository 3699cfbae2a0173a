package handlers

import (
	"net/http"
	"strconv"

	"sparkle/middleware"
	"sparkle/services/availability"
	"sparkle/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the admin and cleaner scheduling calendar.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
	Logger  *zap.Logger
}

// cleanerScope pins cleaners to their own bookings; admins may filter with
// ?cleanerId=.
func cleanerScope(c *gin.Context) string {
	if middleware.CurrentRole(c) == utils.RoleCleaner {
		return middleware.CurrentSubject(c)
	}
	return c.Query("cleanerId")
}

// MonthCalendar handles GET /api/calendar/:year/:month.
func (h *AvailabilityHandler) MonthCalendar(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	year, yErr := strconv.Atoi(c.Param("year"))
	month, mErr := strconv.Atoi(c.Param("month"))
	if yErr != nil || mErr != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid month", "year and month must be numbers")
		return
	}
	ym, err := availability.NewYearMonth(year, month)
	if err != nil {
		badRequest(c, logger, "invalid month", err)
		return
	}

	cal, err := h.Service.MonthCalendar(c.Request.Context(), ym, cleanerScope(c))
	if err != nil {
		respondError(c, logger, "failed to build calendar", err)
		return
	}
	c.JSON(http.StatusOK, cal)
}

// DaySchedule handles GET /api/calendar/day/:date.
func (h *AvailabilityHandler) DaySchedule(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	day, err := availability.ParseDay(c.Param("date"))
	if err != nil {
		badRequest(c, logger, "invalid date", err)
		return
	}

	bookings, err := h.Service.DaySchedule(c.Request.Context(), day, cleanerScope(c))
	if err != nil {
		respondError(c, logger, "failed to load schedule", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": day, "bookings": bookings})
}
