package memory

import (
	"context"
	"time"

	"github.com/bxrgzz/StockFlow-Manager/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas read-only del dashboard sobre el store en memoria.
type StatsRepo struct {
	store *Store
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(store *Store) *StatsRepo {
	return &StatsRepo{store: store}
}

// GetStats cuenta sobre el snapshot actual bajo lock de lectura.
func (r *StatsRepo) GetStats(ctx context.Context, dayStart, dayEnd time.Time) (*repository.StatsResult, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	total, inAlert, entries, exits := r.store.countStats(dayStart, dayEnd)
	return &repository.StatsResult{
		TotalProducts:   total,
		ProductsInAlert: inAlert,
		TodayEntries:    entries,
		TodayExits:      exits,
	}, nil
}
