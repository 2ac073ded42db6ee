package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bxrgzz/StockFlow-Manager/internal/application/dto"
	"github.com/bxrgzz/StockFlow-Manager/internal/domain"
	"github.com/bxrgzz/StockFlow-Manager/internal/domain/entity"
	"github.com/bxrgzz/StockFlow-Manager/internal/domain/repository"
)

// MovementUseCase registra movimientos de stock de forma transaccional y
// sirve los listados del ledger. La creación lee el stock actual, valida que
// la salida no lo deje negativo y confirma la actualización del producto y el
// alta del movimiento como una sola unidad: o se confirman ambos o ninguno.
type MovementUseCase struct {
	txRunner  TxRunner
	movements repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, movements repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, movements: movements}
}

// Create registra un movimiento. El stock previo y el nuevo se calculan aquí
// una única vez y quedan fijados en la fila del ledger; nunca se recalculan.
// Errores: ErrNotFound si el producto no existe, ErrInsufficientStock si una
// salida dejaría el stock por debajo de cero (sin mutación alguna).
func (uc *MovementUseCase) Create(ctx context.Context, in dto.InsertMovementRequest) (*dto.MovementResponse, error) {
	// El boundary ya validó el esquema; revalidar aquí protege a otros callers.
	if in.ProductID == "" || in.Responsible == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MovementTypeEntrada && in.Type != entity.MovementTypeSaida {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Movement
	err := uc.txRunner.Run(ctx, in.ProductID, func(
		products repository.ProductRepository,
		movements repository.MovementRepository,
	) error {
		product, err := products.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		previous := product.CurrentStock
		newStock := previous + in.Quantity
		if in.Type == entity.MovementTypeSaida {
			newStock = previous - in.Quantity
		}
		if newStock < 0 {
			return domain.ErrInsufficientStock
		}

		if err := products.UpdateStock(ctx, product.ID, newStock); err != nil {
			return err
		}
		movement := &entity.Movement{
			ID:            uuid.New().String(),
			ProductID:     product.ID,
			Type:          in.Type,
			Quantity:      in.Quantity,
			PreviousStock: previous,
			NewStock:      newStock,
			Responsible:   in.Responsible,
			Notes:         in.Notes,
			CreatedAt:     time.Now(),
		}
		if err := movements.Create(ctx, movement); err != nil {
			return err
		}
		created = movement
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(created), nil
}

// List devuelve todos los movimientos enriquecidos con nombre y SKU del
// producto, más recientes primero.
func (uc *MovementUseCase) List(ctx context.Context) ([]dto.MovementWithProductResponse, error) {
	list, err := uc.movements.List(ctx)
	if err != nil {
		return nil, err
	}
	return toMovementWithProductResponses(list), nil
}

// DefaultRecentLimit movimientos devueltos por ListRecent si no se pide otro límite.
const DefaultRecentLimit = 10

// ListRecent devuelve los `limit` movimientos más recientes; con limit <= 0
// aplica DefaultRecentLimit.
func (uc *MovementUseCase) ListRecent(ctx context.Context, limit int) ([]dto.MovementWithProductResponse, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	list, err := uc.movements.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toMovementWithProductResponses(list), nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	var notes *string
	if m.Notes != "" {
		notes = &m.Notes
	}
	return &dto.MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		Responsible:   m.Responsible,
		Notes:         notes,
		CreatedAt:     m.CreatedAt,
	}
}

func toMovementWithProductResponses(list []*entity.MovementWithProduct) []dto.MovementWithProductResponse {
	items := make([]dto.MovementWithProductResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementWithProductResponse{
			MovementResponse: *toMovementResponse(&m.Movement),
			ProductName:      m.ProductName,
			ProductSKU:       m.ProductSKU,
		})
	}
	return items
}
