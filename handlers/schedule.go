package handlers

import (
	"net/http"
	"time"

	scheduleService "homeroom/services/schedule"
	userService "homeroom/services/user"
	"homeroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the synthesized daily schedule.
type ScheduleHandler struct {
	ScheduleService scheduleService.ScheduleService
	UserService     userService.UserService
}

// GetScheduleHandler handles GET /api/schedule?date=YYYY-MM-DD. The date
// defaults to today in the server's timezone.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	usr, err := h.UserService.GetUserByID(userID)
	if err != nil {
		logger.Error("Failed to load user for schedule", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	sched, err := h.ScheduleService.GetSchedule(c.Request.Context(), usr, date)
	if err != nil {
		logger.Error("Schedule synthesis failed",
			zap.String("userID", userID),
			zap.String("date", date.Format("2006-01-02")),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to build schedule"})
		return
	}
	c.JSON(http.StatusOK, sched)
}
