package dto

import "time"

// InsertProductRequest entrada para crear o reemplazar un producto.
// PATCH /api/products/:id usa el mismo esquema completo que POST: la
// actualización valida y reemplaza el cuerpo entero.
type InsertProductRequest struct {
	SKU          string `json:"sku" validate:"required,min=1,max=100"`
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Description  string `json:"description"`
	CurrentStock int    `json:"currentStock" validate:"min=0"`
	MinStock     int    `json:"minStock" validate:"min=0"`
	Unit         string `json:"unit" validate:"required,min=1"`
}

// ProductResponse salida de un producto (claves camelCase, formato del API).
type ProductResponse struct {
	ID           string    `json:"id"`
	SKU          string    `json:"sku"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	CurrentStock int       `json:"currentStock"`
	MinStock     int       `json:"minStock"`
	Unit         string    `json:"unit"`
	CreatedAt    time.Time `json:"createdAt"`
}
