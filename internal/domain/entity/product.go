package entity

import "time"

// Product representa un producto del catálogo con su stock materializado.
// CurrentStock es una caché del saldo de movimientos: solo el motor de
// movimientos puede mutarlo (nunca el CRUD de productos).
type Product struct {
	ID           string
	SKU          string // código único legible por humanos
	Name         string
	Description  string
	CurrentStock int // invariante: >= 0 siempre
	MinStock     int // umbral de alerta, >= 0
	Unit         string // etiqueta libre: "un", "kg", etc.
	CreatedAt    time.Time
}

// InAlert indica si el producto está en o por debajo de su stock mínimo.
func (p *Product) InAlert() bool {
	return p.CurrentStock <= p.MinStock
}

// StockRatio devuelve CurrentStock/MinStock para ordenar alertas (menor = más
// crítico). Con MinStock == 0 devuelve 1: sin mínimo configurado no hay
// déficit significativo y el producto ordena como el menos urgente.
func (p *Product) StockRatio() float64 {
	if p.MinStock <= 0 {
		return 1
	}
	return float64(p.CurrentStock) / float64(p.MinStock)
}
