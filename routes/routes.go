package routes

import (
	"RadiologyCenter/cache"
	"RadiologyCenter/config"
	"RadiologyCenter/controllers"
	"RadiologyCenter/handlers"
	"RadiologyCenter/middlewares"
	"RadiologyCenter/repositories"
	"RadiologyCenter/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server.
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	router.Use(middlewares.LoggingMiddleware())

	// Repositories
	patientRepo := repositories.NewPatientRepository(cache)
	unitRepo := repositories.NewUnitRepository()
	examinationRepo := repositories.NewExaminationRepository()
	appointmentRepo := repositories.NewAppointmentRepository(cache)
	providerRepo := repositories.NewInsuranceProviderRepository()
	contractRepo := repositories.NewContractRepository()
	patientInsuranceRepo := repositories.NewPatientInsuranceRepository()
	patientContractRepo := repositories.NewPatientContractRepository()
	paymentRepo := repositories.NewPaymentRepository()
	auditRepo := repositories.NewAuditLogRepository()
	userRepo := repositories.NewUserRepository(db)

	// Services
	auditService := services.NewAuditService(auditRepo)
	patientService := services.NewPatientService(patientRepo, auditService)
	unitService := services.NewUnitService(unitRepo, auditService)
	examinationService := services.NewExaminationService(examinationRepo, unitRepo, auditService)
	appointmentService := services.NewAppointmentService(appointmentRepo, patientRepo, examinationRepo, providerRepo, contractRepo, auditService)
	providerService := services.NewInsuranceProviderService(providerRepo, auditService)
	contractService := services.NewContractService(contractRepo, auditService)
	patientInsuranceService := services.NewPatientInsuranceService(patientInsuranceRepo, patientRepo, providerRepo, auditService)
	patientContractService := services.NewPatientContractService(patientContractRepo, patientRepo, contractRepo, auditService)
	accountingService := services.NewAccountingService(paymentRepo, appointmentRepo, auditService)
	authService := services.NewAuthService(userRepo, auditService)
	userService := services.NewUserService(userRepo, auditService)

	// Handlers
	patientHandler := handlers.NewPatientHandler(patientService)
	unitHandler := handlers.NewUnitHandler(unitService)
	examinationHandler := handlers.NewExaminationHandler(examinationService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	providerHandler := handlers.NewInsuranceProviderHandler(providerService)
	contractHandler := handlers.NewContractHandler(contractService)
	patientInsuranceHandler := handlers.NewPatientInsuranceHandler(patientInsuranceService)
	patientContractHandler := handlers.NewPatientContractHandler(patientContractService)
	accountingHandler := handlers.NewAccountingHandler(accountingService)
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, auditService)

	// Authenticated aggregate CRUD surface
	api := router.Group("/api")
	api.Use(middlewares.TokenAuthMiddleware())
	controllers.SetupAPIRoutes(
		api,
		patientHandler,
		unitHandler,
		examinationHandler,
		appointmentHandler,
		providerHandler,
		contractHandler,
		patientInsuranceHandler,
		patientContractHandler,
	)

	controllers.SetupAccountingRoutes(router, accountingHandler)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupUserRoutes(router, userHandler)

	controllers.SetupRootRoute(router)

	return router
}
