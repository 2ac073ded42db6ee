package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("producto no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("el SKU ya está registrado")
	ErrInsufficientStock = errors.New("stock insuficiente para realizar la salida")
)
