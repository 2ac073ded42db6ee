package usecase

import (
	"context"
	"time"

	"github.com/bxrgzz/StockFlow-Manager/internal/application/dto"
	"github.com/bxrgzz/StockFlow-Manager/internal/domain/repository"
)

// StatsUseCase calcula las estadísticas del dashboard sobre el snapshot
// actual. Solo lectura, sin caché: cada llamada recalcula.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// GetStats devuelve totales de productos, productos en alerta y movimientos
// del día partidos por tipo. "Hoy" es el día calendario local del servidor
// (medianoche a medianoche), igual que el dashboard lo presenta.
func (uc *StatsUseCase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	result, err := uc.repo.GetStats(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		TotalProducts:   result.TotalProducts,
		ProductsInAlert: result.ProductsInAlert,
		TodayEntries:    result.TodayEntries,
		TodayExits:      result.TodayExits,
	}, nil
}
