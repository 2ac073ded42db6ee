package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bxrgzz/StockFlow-Manager/internal/application/inventory"
	"github.com/bxrgzz/StockFlow-Manager/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	MovementUC *inventory.MovementUseCase
	StatsUC    *usecase.StatsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products. /alerts se registra antes de /:id para que no lo capture el parámetro.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/alerts", productHandler.Alerts)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Patch("/:id", productHandler.Update)

	// Movements (ledger append-only)
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)
	movements.Get("/recent", movementHandler.Recent)
	movements.Post("/", movementHandler.Create)

	// Dashboard
	statsHandler := NewStatsHandler(deps.StatsUC)
	api.Get("/stats", statsHandler.GetStats)
}
