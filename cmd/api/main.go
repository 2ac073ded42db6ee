package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/bxrgzz/StockFlow-Manager/internal/application/inventory"
	"github.com/bxrgzz/StockFlow-Manager/internal/application/usecase"
	"github.com/bxrgzz/StockFlow-Manager/internal/domain/repository"
	"github.com/bxrgzz/StockFlow-Manager/internal/infrastructure/memory"
	"github.com/bxrgzz/StockFlow-Manager/internal/infrastructure/postgres"
	httpRouter "github.com/bxrgzz/StockFlow-Manager/internal/interfaces/http"
	"github.com/bxrgzz/StockFlow-Manager/pkg/config"
	"github.com/bxrgzz/StockFlow-Manager/pkg/logger"
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Backend de persistencia seleccionado por configuración; ambos
	// implementan los mismos puertos.
	var (
		productRepo  repository.ProductRepository
		movementRepo repository.MovementRepository
		statsRepo    repository.StatsRepository
		txRunner     inventory.TxRunner
	)
	if cfg.Storage.Driver == config.StoragePostgres {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		productRepo = postgres.NewProductRepository(pool)
		movementRepo = postgres.NewMovementRepository(pool)
		statsRepo = postgres.NewStatsRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	} else {
		store := memory.NewStore()
		productRepo = memory.NewProductRepository(store)
		movementRepo = memory.NewMovementRepository(store)
		statsRepo = memory.NewStatsRepository(store)
		txRunner = memory.NewTxRunner(store)
	}

	productUC := usecase.NewProductUseCase(productRepo)
	movementUC := inventory.NewMovementUseCase(txRunner, movementRepo)
	statsUC := usecase.NewStatsUseCase(statsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockFlow Manager API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		MovementUC: movementUC,
		StatsUC:    statsUC,
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
