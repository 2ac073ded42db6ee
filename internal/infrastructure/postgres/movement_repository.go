package postgres

import (
	"context"
	"fmt"

	"github.com/bxrgzz/StockFlow-Manager/internal/domain/entity"
	"github.com/bxrgzz/StockFlow-Manager/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del ledger de movimientos sobre PostgreSQL
// (usable con pool o tx). El ledger es append-only: solo INSERT y SELECT.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento con su foto de stock previo/nuevo ya calculada.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, product_id, type, quantity, previous_stock, new_stock, responsible, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		movement.PreviousStock, movement.NewStock, movement.Responsible,
		nullable(movement.Notes), movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

const movementSelect = `
	SELECT m.id, m.product_id, m.type, m.quantity, m.previous_stock, m.new_stock,
	       m.responsible, m.notes, m.created_at, p.name, p.sku
	FROM movements m
	JOIN products p ON p.id = m.product_id`

// List devuelve todos los movimientos con nombre y SKU del producto,
// más recientes primero.
func (r *MovementRepo) List(ctx context.Context) ([]*entity.MovementWithProduct, error) {
	return r.queryMany(ctx, movementSelect+` ORDER BY m.created_at DESC`)
}

// ListRecent devuelve los `limit` movimientos más recientes.
func (r *MovementRepo) ListRecent(ctx context.Context, limit int) ([]*entity.MovementWithProduct, error) {
	return r.queryMany(ctx, movementSelect+` ORDER BY m.created_at DESC LIMIT $1`, limit)
}

func (r *MovementRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.MovementWithProduct, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementWithProduct
	for rows.Next() {
		var m entity.MovementWithProduct
		var notes *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity,
			&m.PreviousStock, &m.NewStock, &m.Responsible, &notes,
			&m.CreatedAt, &m.ProductName, &m.ProductSKU); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if notes != nil {
			m.Notes = *notes
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
