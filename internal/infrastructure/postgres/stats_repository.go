package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bxrgzz/StockFlow-Manager/internal/domain/entity"
	"github.com/bxrgzz/StockFlow-Manager/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas read-only del dashboard sobre PostgreSQL.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// GetStats cuenta productos, productos en alerta y movimientos del día en una
// sola pasada. La ventana [dayStart, dayEnd) llega ya calculada por el caso de uso.
func (r *StatsRepo) GetStats(ctx context.Context, dayStart, dayEnd time.Time) (*repository.StatsResult, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM products WHERE current_stock <= min_stock),
			(SELECT COUNT(*) FROM movements WHERE type = $1 AND created_at >= $3 AND created_at < $4),
			(SELECT COUNT(*) FROM movements WHERE type = $2 AND created_at >= $3 AND created_at < $4)`
	var result repository.StatsResult
	err := r.q.QueryRow(ctx, query,
		entity.MovementTypeEntrada, entity.MovementTypeSaida, dayStart, dayEnd,
	).Scan(&result.TotalProducts, &result.ProductsInAlert, &result.TodayEntries, &result.TodayExits)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return &result, nil
}
