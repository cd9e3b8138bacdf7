package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc
	UpdatePasswordHandler   gin.HandlerFunc
	SignOutHandler          gin.HandlerFunc
	DeleteUserHandler       gin.HandlerFunc

	// Class endpoints
	GetClassesHandler  gin.HandlerFunc
	SaveClassHandler   gin.HandlerFunc
	DeleteClassHandler gin.HandlerFunc
	GetAliasesHandler  gin.HandlerFunc
	SaveAliasHandler   gin.HandlerFunc
	DeleteAliasHandler gin.HandlerFunc

	// Schedule endpoints
	GetScheduleHandler gin.HandlerFunc

	// Portal endpoints
	GetNotesHandler   gin.HandlerFunc
	SaveNoteHandler   gin.HandlerFunc
	DeleteNoteHandler gin.HandlerFunc
	GetQuoteHandler   gin.HandlerFunc
	AddQuoteHandler   gin.HandlerFunc
	GetWeatherHandler gin.HandlerFunc
}
