package dto

import "time"

// InsertMovementRequest entrada para registrar un movimiento de stock.
// PreviousStock y NewStock no existen en el esquema de entrada: los calcula
// el servidor y cualquier valor enviado por el cliente se ignora.
type InsertMovementRequest struct {
	ProductID   string `json:"productId" validate:"required,min=1"`
	Type        string `json:"type" validate:"required,oneof=entrada saida"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
	Responsible string `json:"responsible" validate:"required,min=1"`
	Notes       string `json:"notes"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"productId"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	PreviousStock int       `json:"previousStock"`
	NewStock      int       `json:"newStock"`
	Responsible   string    `json:"responsible"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
}

// MovementWithProductResponse movimiento enriquecido para los listados.
type MovementWithProductResponse struct {
	MovementResponse
	ProductName string `json:"productName"`
	ProductSKU  string `json:"productSku"`
}
