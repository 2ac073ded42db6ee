package repository

import (
	"context"

	"github.com/bxrgzz/StockFlow-Manager/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para movimientos (DIP).
// El ledger es append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error

	// List devuelve todos los movimientos enriquecidos con nombre y SKU del
	// producto, ordenados por fecha de creación descendente.
	List(ctx context.Context) ([]*entity.MovementWithProduct, error)

	// ListRecent trunca el listado a los `limit` movimientos más recientes.
	ListRecent(ctx context.Context, limit int) ([]*entity.MovementWithProduct, error)
}
