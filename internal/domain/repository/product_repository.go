package repository

import (
	"context"

	"github.com/bxrgzz/StockFlow-Manager/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos Get* devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)

	// ListInAlert devuelve los productos con CurrentStock <= MinStock,
	// ordenados por ratio CurrentStock/MinStock ascendente (más crítico
	// primero; ratio 1 si MinStock == 0), desempate por SKU.
	ListInAlert(ctx context.Context) ([]*entity.Product, error)

	// GetForUpdate obtiene el producto bloqueando la fila para update
	// (SELECT FOR UPDATE). Solo tiene sentido dentro de una transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)

	// UpdateStock actualiza solo CurrentStock (usado por el motor de movimientos).
	UpdateStock(ctx context.Context, productID string, newStock int) error
}
