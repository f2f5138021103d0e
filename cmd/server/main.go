package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/catcoat/backend/internal/config"
	"github.com/catcoat/backend/internal/delivery/http"
	"github.com/catcoat/backend/internal/repository/postgres"
	"github.com/catcoat/backend/internal/service"
	"github.com/catcoat/backend/pkg/metrics"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := config.Load()

	collector := metrics.NewCollector("catcoat")

	// Dependency Injection: Repository
	var repo service.CatRepository
	switch {
	case cfg.Env == "demo":
		log.Println("Demo mode: using in-memory store")
		repo = postgres.NewMemoryRepository()
	case cfg.DatabaseURL == "":
		log.Println("Warning: DATABASE_URL is not set, store operations will fail")
		repo = postgres.NewUnavailableRepository()
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("Warning: Could not connect to database: %v", err)
			repo = postgres.NewUnavailableRepository()
			break
		}
		defer pool.Close()

		pgRepo := postgres.NewPostgresRepository(pool, collector)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			log.Printf("Warning: Could not ensure schema: %v", err)
		}
		log.Println("Connected to PostgreSQL")
		repo = pgRepo
	}

	// Dependency Injection: Services
	weatherSvc := service.NewWeatherService(cfg.WeatherBaseURL, collector)
	advisorSvc := service.NewAdvisorService(weatherSvc, repo)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "Cats Weather & Coat Advisor",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(http.MetricsMiddleware(collector))

	// Routes
	http.SetupRoutes(app, advisorSvc, repo, cfg)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
