package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bxrgzz/StockFlow-Manager/internal/application/dto"
	"github.com/bxrgzz/StockFlow-Manager/internal/domain"
	"github.com/bxrgzz/StockFlow-Manager/internal/domain/entity"
	"github.com/bxrgzz/StockFlow-Manager/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. CurrentStock solo se
// fija en la creación o el reemplazo completo; los ajustes incrementales
// pasan por el motor de movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto con ID y fecha de creación asignados aquí.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.InsertProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		Name:         in.Name,
		Description:  in.Description,
		CurrentStock: in.CurrentStock,
		MinStock:     in.MinStock,
		Unit:         in.Unit,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return ToProductResponse(product), nil
}

// Update reemplaza por completo los campos mutables (sku, name, description,
// currentStock, minStock, unit) conservando ID y fecha de creación original.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.InsertProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	other, err := uc.repo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, domain.ErrDuplicate
	}
	product.SKU = in.SKU
	product.Name = in.Name
	product.Description = in.Description
	product.CurrentStock = in.CurrentStock
	product.MinStock = in.MinStock
	product.Unit = in.Unit
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List lista todos los productos, más recientes primero.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListInAlert lista los productos en alerta (CurrentStock <= MinStock)
// ordenados del más crítico al menos crítico.
func (uc *ProductUseCase) ListInAlert(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListInAlert(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ToProductResponse convierte la entidad al DTO de salida del API.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	var description *string
	if p.Description != "" {
		description = &p.Description
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  description,
		CurrentStock: p.CurrentStock,
		MinStock:     p.MinStock,
		Unit:         p.Unit,
		CreatedAt:    p.CreatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return items
}
