package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gohanrv1/infotaxi-api/internal/application/bulkload"
	"github.com/gohanrv1/infotaxi-api/internal/application/uploadtoken"
	"github.com/gohanrv1/infotaxi-api/internal/application/usecase"
	"github.com/gohanrv1/infotaxi-api/internal/infrastructure/postgres"
	httpRouter "github.com/gohanrv1/infotaxi-api/internal/interfaces/http"
	"github.com/gohanrv1/infotaxi-api/pkg/config"
	"github.com/gohanrv1/infotaxi-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	counterRepo := postgres.NewQueryCounterRepository(pool)
	stateRepo := postgres.NewStateRepository(pool)
	tokenRepo := postgres.NewTokenRepository(pool)

	userUC := usecase.NewUserUseCase(userRepo)
	reportUC := usecase.NewReportUseCase(reportRepo, counterRepo, cfg.Query.CountMisses)
	stateUC := usecase.NewStateUseCase(stateRepo)
	pipeline := bulkload.NewPipeline(reportRepo, cfg.Upload.MaxErrorDetails)
	tokenUC := uploadtoken.New(tokenRepo, userRepo, uploadtoken.Config{
		TTL:     time.Duration(cfg.Upload.TokenTTLHours) * time.Hour,
		BaseURL: cfg.HTTP.PublicBaseURL,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		// Las plantillas y archivos de importación pueden superar el límite por defecto.
		BodyLimit: 20 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "InfoTaxi API",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status": "error", "message": "BD no disponible",
			})
		}
		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   cfg.App.Name,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:   userUC,
		ReportUC: reportUC,
		StateUC:  stateUC,
		TokenUC:  tokenUC,
		Pipeline: pipeline,
		UserRepo: userRepo,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
