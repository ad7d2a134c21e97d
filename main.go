// File: safebridge/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"safebridge/config"
	"safebridge/database"
	"safebridge/database/repository"
	fileRepo "safebridge/database/repository/file"
	mongoRepo "safebridge/database/repository/mongo"
	"safebridge/handlers"
	"safebridge/middleware"
	"safebridge/routes"
	"safebridge/services/directory"
	"safebridge/services/lifecycle"
	"safebridge/services/session"
	"safebridge/store"
	"safebridge/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	// Snapshot storage backend.
	var snapRepo repository.SnapshotRepository
	switch config.AppConfig.StorageBackend {
	case "mongo":
		database.InitDB()
		snapRepo = mongoRepo.NewSnapshotRepo(database.MongoClient, config.AppConfig.DatabaseName)
	case "file":
		snapRepo = fileRepo.NewSnapshotRepo(config.AppConfig.SnapshotPath)
	default:
		logger.Sugar().Fatalf("main: unknown storage backend %q", config.AppConfig.StorageBackend)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	st, err := store.Open(ctx, snapRepo)
	cancel()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open snapshot store: %v", err)
	}

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), snapRepo)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	directoryService := &directory.DefaultDirectoryService{Store: st}
	caseService := &lifecycle.DefaultCaseService{Store: st}
	sessionService := &session.DefaultSessionService{
		Store: st,
		Cache: utils.GetSessionCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions:  sessionService,
		Session:   handlers.NewSessionHandler(sessionService),
		Directory: handlers.NewDirectoryHandler(directoryService),
		Cases:     handlers.NewCaseHandler(caseService),
		Admin:     handlers.NewAdminHandler(directoryService, caseService, st),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
