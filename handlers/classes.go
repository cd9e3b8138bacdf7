package handlers

import (
	"net/http"

	"homeroom/models"
	classService "homeroom/services/classes"
	"homeroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClassHandler serves class and alias configuration endpoints.
type ClassHandler struct {
	ClassService classService.ClassService
}

// GetClassesHandler handles GET /api/classes.
func (h *ClassHandler) GetClassesHandler(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	classes, err := h.ClassService.GetClasses(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list classes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve classes"})
		return
	}
	c.JSON(http.StatusOK, classes)
}

// SaveClassHandler handles POST /api/classes.
func (h *ClassHandler) SaveClassHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	var class models.Class
	if err := c.ShouldBindJSON(&class); err != nil {
		logger.Error("Invalid class payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	class.UserID = userID

	saved, err := h.ClassService.SaveClass(&class)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteClassHandler handles DELETE /api/classes/:id.
func (h *ClassHandler) DeleteClassHandler(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	if err := h.ClassService.DeleteClass(userID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class deleted"})
}

// GetAliasesHandler handles GET /api/classes/aliases.
func (h *ClassHandler) GetAliasesHandler(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	aliases, err := h.ClassService.GetAliases(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list aliases", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve aliases"})
		return
	}
	c.JSON(http.StatusOK, aliases)
}

// SaveAliasHandler handles POST /api/classes/aliases.
func (h *ClassHandler) SaveAliasHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	var alias models.ClassAlias
	if err := c.ShouldBindJSON(&alias); err != nil {
		logger.Error("Invalid alias payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	alias.UserID = userID

	saved, err := h.ClassService.SaveAlias(&alias)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteAliasHandler handles DELETE /api/classes/aliases/:id.
func (h *ClassHandler) DeleteAliasHandler(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	if err := h.ClassService.DeleteAlias(userID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alias deleted"})
}
