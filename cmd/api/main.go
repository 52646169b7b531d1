package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
	"taskboard/interfaces/api/middleware"
	"taskboard/interfaces/api/routes"
	"taskboard/pkg/di"
	"taskboard/pkg/logger"
	"taskboard/web"
)

func main() {
	// Initialize DI container
	container := di.NewContainer()

	// Initialize all dependencies (including logger)
	if err := container.Initialize(); err != nil {
		// ใช้ log พื้นฐานก่อน logger init
		panic("Failed to initialize container: " + err.Error())
	}

	cfg := container.GetConfig()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:      middleware.ErrorHandler(),
		AppName:           cfg.App.Name,
		Views:             web.NewViewEngine(),
		ViewsLayout:       web.DefaultLayout,
		EnablePrintRoutes: cfg.IsDevelopment(), // development: พิมพ์ route table ตอน start
	})

	// Setup graceful shutdown
	setupGracefulShutdown(app, container)

	// Setup middleware (order matters!)
	app.Use(middleware.RequestIDMiddleware()) // ต้องมาก่อน logger
	app.Use(middleware.LoggerMiddleware("/health"))
	app.Use(middleware.CorsMiddleware(cfg.App.CorsOriginList()))
	app.Use(middleware.MethodOverride()) // ต้องมาก่อน routes ทั้งหมด

	// Create handlers from services
	h := handlers.NewHandlers(container.GetHandlerServices())

	// Setup routes
	routes.SetupRoutes(app, h, cfg.JWT.Secret)

	// Start server
	port := cfg.App.Port
	logger.Info("Server starting",
		"port", port,
		"env", cfg.App.Env,
		"app", cfg.App.Name,
	)
	logger.Info("Endpoints available",
		"web", "http://localhost:"+port+"/",
		"health", "http://localhost:"+port+"/health",
		"api", "http://localhost:"+port+"/api/v1",
	)

	if err := app.Listen(":" + port); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(app *fiber.App, container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		if err := app.Shutdown(); err != nil {
			logger.Error("Error shutting down server", "error", err)
		}

		if err := container.Cleanup(); err != nil {
			logger.Error("Error during cleanup", "error", err)
		}

		os.Exit(0)
	}()
}
