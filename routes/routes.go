package routes

import (
	"ClinicDesk/cache"
	"ClinicDesk/config"
	"ClinicDesk/controllers"
	"ClinicDesk/handlers"
	"ClinicDesk/middlewares"
	"ClinicDesk/repositories"
	"ClinicDesk/services"
	"ClinicDesk/store"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server. The desk
// store is created by the caller so startup can restore the last-known-good
// snapshot and run the refresh loop against the same instance the handlers
// use.
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB, deskStore *store.AppointmentStore) (http.Handler, *services.AppointmentService) {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	appointmentRepo := repositories.NewAppointmentRepository(cache)
	patientRepo := repositories.NewPatientRepository(cache)
	doctorRepo := repositories.NewDoctorRepository(cache)
	serviceRepo := repositories.NewServiceRepository(cache)
	userRepo := repositories.NewUserRepository(db, cache)

	appointmentService := services.NewAppointmentService(appointmentRepo, deskStore, config.FetchLimit)
	checkoutService := services.NewCheckoutService(appointmentRepo, patientRepo, serviceRepo, deskStore)
	previewService := services.NewCartPreviewService(serviceRepo)
	patientService := services.NewPatientService(patientRepo)
	catalogService := services.NewCatalogService(serviceRepo, doctorRepo)
	authService := services.NewAuthService(userRepo, cache)

	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, previewService)
	patientHandler := handlers.NewPatientHandler(patientService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	authHandler := handlers.NewAuthHandler(authService)

	// Register routes
	controllers.SetupDeskRoutes(router, patientHandler, catalogHandler, checkoutHandler, appointmentHandler)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router, appointmentService
}
