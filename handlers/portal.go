package handlers

import (
	"net/http"

	"homeroom/models"
	portalService "homeroom/services/portal"
	"homeroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PortalHandler serves the home-page glue endpoints.
type PortalHandler struct {
	PortalService portalService.PortalService
}

// GetNotesHandler handles GET /api/portal/notes.
func (h *PortalHandler) GetNotesHandler(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	notes, err := h.PortalService.GetNotes(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list notes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notes"})
		return
	}
	c.JSON(http.StatusOK, notes)
}

// SaveNoteHandler handles POST /api/portal/notes.
func (h *PortalHandler) SaveNoteHandler(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	var note models.StickyNote
	if err := c.ShouldBindJSON(&note); err != nil {
		utils.GetLogger().Error("Invalid note payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	note.UserID = userID

	saved, err := h.PortalService.SaveNote(&note)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteNoteHandler handles DELETE /api/portal/notes/:id.
func (h *PortalHandler) DeleteNoteHandler(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	if err := h.PortalService.DeleteNote(userID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted"})
}

// GetQuoteHandler handles GET /api/portal/quote.
func (h *PortalHandler) GetQuoteHandler(c *gin.Context) {
	quote, err := h.PortalService.RandomQuote()
	if err != nil {
		utils.GetLogger().Error("Failed to fetch quote", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve quote"})
		return
	}
	c.JSON(http.StatusOK, quote)
}

// AddQuoteHandler handles POST /api/portal/quote.
func (h *PortalHandler) AddQuoteHandler(c *gin.Context) {
	var quote models.Quote
	if err := c.ShouldBindJSON(&quote); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	saved, err := h.PortalService.AddQuote(&quote)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// GetWeatherHandler handles GET /api/portal/weather.
func (h *PortalHandler) GetWeatherHandler(c *gin.Context) {
	weather, err := h.PortalService.CurrentWeather(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to fetch weather", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve weather"})
		return
	}
	c.JSON(http.StatusOK, weather)
}
