// File: fletero/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fletero/config"
	"fletero/handlers"
	"fletero/middleware"
	"fletero/routes"
	calendarDir "fletero/services/calendar"
	"fletero/services/scheduling"
	"fletero/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()
	directory, err := calendarDir.NewGoogleDirectory(
		ctx,
		config.AppConfig.GoogleCredentialsFile,
		config.AppConfig.BusinessTimeZone,
		config.BusinessLocation(),
		config.AppConfig.CalendarPageSize,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar directory: %v", err)
	}

	// Optional fleet roster cache. Disabled by default so every search reads
	// the calendar list fresh.
	var fleetDirectory calendarDir.Directory = directory
	if ttl := config.AppConfig.FleetCacheTTLSeconds; ttl > 0 && config.AppConfig.RedisAddr != "" {
		fleetDirectory = calendarDir.NewCachedDirectory(
			directory,
			utils.GetFleetCacheClient(),
			time.Duration(ttl)*time.Second,
			logger,
		)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	schedulingService := &scheduling.DefaultSchedulingService{
		Directory: fleetDirectory,
	}
	schedulingHandler := handlers.NewSchedulingHandler(schedulingService, logger)

	// Register routes.
	routes.RegisterRoutes(router, schedulingHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "10000"
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
