package routes

import (
	"net/http"
	"time"

	"coolq/handlers"
	"coolq/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCustomerRoutes registers customer account and booking endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.POST("/register", hb.Customer.RegisterCustomerHandler)
		api.POST("/login", hb.Customer.LoginCustomerHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthCustomerMiddleware(hb.CustomerRepo))
		api.GET("/me", hb.Customer.GetCustomerProfileHandler)
		api.PATCH("/me", hb.Customer.UpdateCustomerProfileHandler)
	}

	bookings := r.Group("/api/bookings")
	{
		bookings.Use(middleware.JWTAuthCustomerMiddleware(hb.CustomerRepo))
		bookings.POST("", hb.Booking.CreateBookingHandler)
		bookings.GET("", hb.Booking.ListMyBookingsHandler)
		bookings.GET("/:id", hb.Booking.GetBookingHandler)
		bookings.PUT("/:id/cancel", hb.Booking.CancelBookingHandler)
		bookings.POST("/:id/review", hb.Review.CreateReviewHandler)
	}
}

// RegisterTechnicianRoutes registers technician account and job endpoints.
func RegisterTechnicianRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/technicians")
	{
		api.POST("/register", hb.Technician.RegisterTechnicianHandler)
		api.POST("/register/documents", hb.Storage.UploadTechnicianDocumentsHandler)
		api.POST("/login", hb.Technician.LoginTechnicianHandler)

		// Public technician card and reviews.
		api.GET("/id/:id", hb.Technician.GetTechnicianByIDHandler)
		api.GET("/id/:id/reviews", hb.Review.GetTechnicianReviewsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthTechnicianMiddleware(hb.TechnicianRepo))
		protected.GET("/me", hb.Technician.GetTechnicianProfileHandler)
		protected.PATCH("/me", hb.Technician.UpdateTechnicianProfileHandler)
	}

	jobs := r.Group("/api/jobs")
	{
		jobs.Use(middleware.JWTAuthTechnicianMiddleware(hb.TechnicianRepo))
		jobs.GET("", hb.Booking.ListJobsHandler)
		jobs.GET("/:id", hb.Booking.GetBookingHandler)
		jobs.PUT("/:id/accept", hb.Booking.AcceptBookingHandler)
		jobs.PUT("/:id/reject", hb.Booking.RejectBookingHandler)
		jobs.PUT("/:id/on-the-way", hb.Booking.SetOnTheWayHandler)
		jobs.PUT("/:id/working", hb.Booking.SetWorkingHandler)
		jobs.PUT("/:id/complete", hb.Booking.CompleteBookingHandler)
		jobs.POST("/:id/photos", hb.Booking.UploadJobPhotosHandler)
	}
}

// RegisterCatalogRoutes registers the public service catalog.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Catalog.ListServicesHandler)
		api.GET("/:id", hb.Catalog.GetServiceHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/customers", hb.Admin.GetAllCustomersHandler)
		adminGroup.GET("/technicians", hb.Admin.GetAllTechniciansHandler)
		adminGroup.PUT("/technicians/:id/approve", hb.Admin.ApproveTechnicianHandler)
		adminGroup.PUT("/technicians/:id/reject", hb.Admin.RejectTechnicianHandler)
		adminGroup.GET("/bookings", hb.Admin.GetAllBookingsHandler)
		adminGroup.PUT("/bookings/:id/status", hb.Admin.SetBookingStatusHandler)
		adminGroup.PUT("/bookings/:id/paid", hb.Admin.MarkBookingPaidHandler)
		adminGroup.GET("/services", hb.Catalog.AdminListServicesHandler)
		adminGroup.POST("/services", hb.Catalog.AdminCreateServiceHandler)
		adminGroup.PATCH("/services/:id", hb.Catalog.AdminUpdateServiceHandler)
		adminGroup.PUT("/services/:id/active", hb.Catalog.AdminSetServiceActiveHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm CoolQ"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCustomerRoutes(r, hb)
	RegisterTechnicianRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
