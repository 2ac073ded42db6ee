package memory

import (
	"context"

	"github.com/bxrgzz/StockFlow-Manager/internal/domain"
	"github.com/bxrgzz/StockFlow-Manager/internal/domain/entity"
	"github.com/bxrgzz/StockFlow-Manager/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository. Con inTx no
// toma el lock del store: lo sostiene el TxRunner durante toda la transacción.
type ProductRepo struct {
	store *Store
	inTx  bool
}

// NewProductRepository construye el adaptador sobre el store compartido.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

// Create persiste un nuevo producto. El SKU duplicado mapea a ErrDuplicate,
// igual que el constraint único del backend postgres.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	if existing := r.store.getProductBySKU(product.SKU); existing != nil {
		return domain.ErrDuplicate
	}
	r.store.insertProduct(product)
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	return r.store.getProduct(id), nil
}

// GetBySKU obtiene un producto por SKU. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	return r.store.getProductBySKU(sku), nil
}

// GetForUpdate equivale a GetByID: aquí no hay fila que bloquear, la
// serialización la da el lock exclusivo que el TxRunner ya sostiene.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

// Update reemplaza los campos mutables de un producto existente.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	if other := r.store.getProductBySKU(product.SKU); other != nil && other.ID != product.ID {
		return domain.ErrDuplicate
	}
	r.store.replaceProduct(product)
	return nil
}

// UpdateStock actualiza solo el stock actual (motor de movimientos).
func (r *ProductRepo) UpdateStock(ctx context.Context, productID string, newStock int) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	r.store.setStock(productID, newStock)
	return nil
}

// List lista todos los productos, más recientes primero.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	return r.store.productsNewestFirst(), nil
}

// ListInAlert lista los productos en alerta ordenados del más crítico al menos crítico.
func (r *ProductRepo) ListInAlert(ctx context.Context) ([]*entity.Product, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	return r.store.productsInAlert(), nil
}
