package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"skiresort/internal/config"
	"skiresort/internal/database"
	"skiresort/internal/middleware"
	"skiresort/internal/modules/auth"
	"skiresort/internal/modules/booking"
	"skiresort/internal/modules/inventory"
	"skiresort/internal/modules/journal"
	"skiresort/internal/modules/lesson"
	"skiresort/internal/modules/reporting"
	jwtsvc "skiresort/internal/pkg/jwt"
	"skiresort/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	instructorRepo := repository.NewInstructorRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	journalService := journal.NewService(transactionRepo)
	journalHandler := journal.NewHandler(journalService)

	inventoryService := inventory.NewService(equipmentRepo, journalService, cfg.MaxRentals)
	inventoryHandler := inventory.NewHandler(inventoryService)

	bookingService := booking.NewService(bookingRepo, journalService)
	bookingHandler := booking.NewHandler(bookingService)

	lessonService := lesson.NewService(lessonRepo, instructorRepo, journalService)
	lessonHandler := lesson.NewHandler(lessonService)

	reportingService := reporting.NewService(journalService, bookingRepo, equipmentRepo, lessonRepo)
	reportingHandler := reporting.NewHandler(reportingService)

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	adminOnly := middleware.AdminOnly()

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			inventoryHandler.RegisterRoutes(protected, adminOnly)
			lessonHandler.RegisterRoutes(protected, adminOnly)
			journalHandler.RegisterRoutes(protected, adminOnly)
			reportingHandler.RegisterRoutes(protected, adminOnly)
		}
	}

	log.Printf("listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
