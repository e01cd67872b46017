// File: coolq/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coolq/config"
	"coolq/database"
	bookingRepoPkg "coolq/database/repository/booking"
	catalogRepoPkg "coolq/database/repository/catalog"
	customerRepoPkg "coolq/database/repository/customer"
	reviewRepoPkg "coolq/database/repository/review"
	technicianRepoPkg "coolq/database/repository/technician"
	"coolq/handlers"
	"coolq/middleware"
	"coolq/routes"
	"coolq/services/booking"
	"coolq/services/catalog"
	"coolq/services/customer"
	"coolq/services/review"
	"coolq/services/technician"
	"coolq/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()
	technicianRepo := technicianRepoPkg.NewMongoTechnicianRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	for name, ensure := range map[string]func() error{
		"customers":   customerRepoPkg.EnsureIndexes,
		"technicians": technicianRepoPkg.EnsureIndexes,
		"services":    catalogRepoPkg.EnsureIndexes,
		"bookings":    bookingRepoPkg.EnsureIndexes,
		"reviews":     reviewRepoPkg.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	customerService := &customer.DefaultCustomerService{Repo: customerRepo}
	technicianService := &technician.DefaultTechnicianService{Repo: technicianRepo}
	catalogService := &catalog.DefaultCatalogService{Repo: catalogRepo}

	bookingService := &booking.DefaultBookingService{
		BookingRepo:    bookingRepo,
		CustomerRepo:   customerRepo,
		TechnicianRepo: technicianRepo,
		CatalogRepo:    catalogRepo,
	}
	reviewService := &review.DefaultReviewService{
		ReviewRepo:     reviewRepo,
		BookingRepo:    bookingRepo,
		TechnicianRepo: technicianRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CustomerRepo:   customerRepo,
		TechnicianRepo: technicianRepo,

		Customer:   handlers.NewCustomerHandler(customerService),
		Technician: handlers.NewTechnicianHandler(technicianService),
		Catalog:    handlers.NewCatalogHandler(catalogService),
		Booking:    handlers.NewBookingHandler(bookingService, storageService),
		Review:     handlers.NewReviewHandler(reviewService),
		Admin:      handlers.NewAdminHandler(customerService, technicianService, bookingService),
		Storage:    handlers.NewStorageHandler(storageService),
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
