package inventory

import (
	"context"

	"github.com/bxrgzz/StockFlow-Manager/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de persistencia,
// pasando repositorios atados a esa transacción. Garantiza atomicidad para el
// motor de movimientos y serializa las ejecuciones concurrentes sobre el mismo
// producto: PostgreSQL con el bloqueo de fila (SELECT FOR UPDATE), el backend
// en memoria con el lock exclusivo del store durante toda la transacción.
type TxRunner interface {
	Run(ctx context.Context, productID string, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
