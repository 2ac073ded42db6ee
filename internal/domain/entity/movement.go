package entity

import "time"

// Tipos de movimiento de stock. Se conservan los valores de la API pública
// ("entrada" suma stock, "saida" lo resta).
const (
	MovementTypeEntrada = "entrada"
	MovementTypeSaida   = "saida"
)

// Movement representa un movimiento de stock (entrada o salida) con la foto
// del stock antes y después. Es append-only: se crea una vez y nunca se
// actualiza ni elimina, de modo que el ledger reconstruye el historial de
// stock sin releer el producto.
type Movement struct {
	ID            string
	ProductID     string
	Type          string // entrada | saida
	Quantity      int    // >= 1
	PreviousStock int    // stock del producto justo antes del movimiento
	NewStock      int    // invariante: PreviousStock ± Quantity, nunca < 0
	Responsible   string
	Notes         string
	CreatedAt     time.Time
}

// SignedQuantity devuelve la cantidad con signo según el tipo de movimiento.
func (m *Movement) SignedQuantity() int {
	if m.Type == MovementTypeSaida {
		return -m.Quantity
	}
	return m.Quantity
}

// MovementWithProduct enriquece un movimiento con los datos del producto
// referenciado para los listados (JOIN en PostgreSQL, lookup en memoria).
type MovementWithProduct struct {
	Movement
	ProductName string
	ProductSKU  string
}
