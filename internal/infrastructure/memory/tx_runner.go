package memory

import (
	"context"

	"github.com/bxrgzz/StockFlow-Manager/internal/application/inventory"
	"github.com/bxrgzz/StockFlow-Manager/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks con el lock exclusivo del store sostenido de
// principio a fin: ningún otro movimiento, lectura ni escritura se intercala
// entre la lectura del stock y las dos mutaciones. Esto subsume la
// serialización por producto que pide el motor de movimientos.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store compartido.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn bajo el lock de escritura con repos que no vuelven a
// tomarlo. No hay rollback: fn debe validar antes de escribir, como hace el
// caso de uso de movimientos (lectura y validación preceden a toda mutación).
func (r *TxRunner) Run(ctx context.Context, _ string, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(
		&ProductRepo{store: r.store, inTx: true},
		&MovementRepo{store: r.store, inTx: true},
	)
}
