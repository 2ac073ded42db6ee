package memory

import (
	"context"

	"github.com/bxrgzz/StockFlow-Manager/internal/domain/entity"
	"github.com/bxrgzz/StockFlow-Manager/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación en memoria del ledger de movimientos.
type MovementRepo struct {
	store *Store
	inTx  bool
}

// NewMovementRepository construye el adaptador sobre el store compartido.
func NewMovementRepository(store *Store) *MovementRepo {
	return &MovementRepo{store: store}
}

// Create añade un movimiento al final del ledger.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	r.store.appendMovement(movement)
	return nil
}

// List devuelve todos los movimientos enriquecidos, más recientes primero.
func (r *MovementRepo) List(ctx context.Context) ([]*entity.MovementWithProduct, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	return r.store.movementsNewestFirst(0), nil
}

// ListRecent devuelve los `limit` movimientos más recientes.
func (r *MovementRepo) ListRecent(ctx context.Context, limit int) ([]*entity.MovementWithProduct, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	return r.store.movementsNewestFirst(limit), nil
}
