package routes

import (
	"net/http"
	"time"

	"homeroom/handlers"
	"homeroom/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account and session endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.PUT("/password", hb.UpdatePasswordHandler)
		api.POST("/signout", hb.SignOutHandler)
		api.DELETE("/me", hb.DeleteUserHandler)
	}
}

// RegisterClassRoutes registers class and alias configuration endpoints.
func RegisterClassRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/classes")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.GetClassesHandler)
		api.POST("", hb.SaveClassHandler)
		api.DELETE("/:id", hb.DeleteClassHandler)
		api.GET("/aliases", hb.GetAliasesHandler)
		api.POST("/aliases", hb.SaveAliasHandler)
		api.DELETE("/aliases/:id", hb.DeleteAliasHandler)
	}
}

// RegisterScheduleRoutes registers the daily schedule endpoint.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.GetScheduleHandler)
	}
}

// RegisterPortalRoutes registers the home-page glue endpoints.
func RegisterPortalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/portal")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/notes", hb.GetNotesHandler)
		api.POST("/notes", hb.SaveNoteHandler)
		api.DELETE("/notes/:id", hb.DeleteNoteHandler)
		api.GET("/quote", hb.GetQuoteHandler)
		api.POST("/quote", hb.AddQuoteHandler)
		api.GET("/weather", hb.GetWeatherHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Homeroom"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterUserRoutes(r, hb)
	RegisterClassRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterPortalRoutes(r, hb)
	RegisterHealthRoute(r)
}
