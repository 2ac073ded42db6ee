package repository

import (
	"context"
	"time"
)

// StatsResult resultado crudo de la consulta de estadísticas del dashboard.
type StatsResult struct {
	TotalProducts   int
	ProductsInAlert int
	TodayEntries    int
	TodayExits      int
}

// StatsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos, sin caché).
type StatsRepository interface {
	// GetStats cuenta productos, productos en alerta y movimientos del día
	// partidos por tipo. [dayStart, dayEnd) es la ventana del día calendario
	// local; la calcula el caso de uso, no el repositorio.
	GetStats(ctx context.Context, dayStart, dayEnd time.Time) (*StatsResult, error)
}
