// File: homeroom/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homeroom/config"
	"homeroom/cron"
	"homeroom/database"
	classesRepoPkg "homeroom/database/repository/classes"
	portalRepoPkg "homeroom/database/repository/portal"
	userRepoPkg "homeroom/database/repository/user"
	"homeroom/handlers"
	"homeroom/routes"
	classesService "homeroom/services/classes"
	"homeroom/services/feed"
	portalService "homeroom/services/portal"
	scheduleService "homeroom/services/schedule"
	userService "homeroom/services/user"
	"homeroom/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	classRepo := classesRepoPkg.NewMongoClassRepo()
	portalRepo := portalRepoPkg.NewMongoPortalRepo()

	// services.
	usrSvc := &userService.DefaultUserService{
		Repo: userRepo,
	}
	classSvc := &classesService.DefaultClassService{
		Repo: classRepo,
	}
	feedSvc := feed.NewDefaultFeedService(utils.GetCacheClient())
	schedSvc := &scheduleService.DefaultScheduleService{
		Feeds:   feedSvc,
		Classes: classRepo,
	}
	portalSvc := &portalService.DefaultPortalService{
		Repo:  portalRepo,
		Cache: utils.GetCacheClient(),
	}

	userHandler := &handlers.UserHandler{UserService: usrSvc}
	classHandler := &handlers.ClassHandler{ClassService: classSvc}
	scheduleHandler := &handlers.ScheduleHandler{ScheduleService: schedSvc, UserService: usrSvc}
	portalHandler := &handlers.PortalHandler{PortalService: portalSvc}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
		GetProfileHandler:       userHandler.GetProfileHandler,
		UpdateProfileHandler:    userHandler.UpdateProfileHandler,
		UpdatePasswordHandler:   userHandler.UpdatePasswordHandler,
		SignOutHandler:          userHandler.SignOutHandler,
		DeleteUserHandler:       userHandler.DeleteUserHandler,

		// Class endpoints.
		GetClassesHandler:  classHandler.GetClassesHandler,
		SaveClassHandler:   classHandler.SaveClassHandler,
		DeleteClassHandler: classHandler.DeleteClassHandler,
		GetAliasesHandler:  classHandler.GetAliasesHandler,
		SaveAliasHandler:   classHandler.SaveAliasHandler,
		DeleteAliasHandler: classHandler.DeleteAliasHandler,

		// Schedule endpoints.
		GetScheduleHandler: scheduleHandler.GetScheduleHandler,

		// Portal endpoints.
		GetNotesHandler:   portalHandler.GetNotesHandler,
		SaveNoteHandler:   portalHandler.SaveNoteHandler,
		DeleteNoteHandler: portalHandler.DeleteNoteHandler,
		GetQuoteHandler:   portalHandler.GetQuoteHandler,
		AddQuoteHandler:   portalHandler.AddQuoteHandler,
		GetWeatherHandler: portalHandler.GetWeatherHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the background feed pre-warm worker.
	cron.InitFeedWorker(feedSvc, userRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
