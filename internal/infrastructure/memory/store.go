// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Mismo contrato que el adaptador postgres; pensado para desarrollo
// local y tests, se selecciona con STORAGE_DRIVER=memory.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/bxrgzz/StockFlow-Manager/internal/domain/entity"
)

// Store guarda productos y movimientos protegidos por un RWMutex. Los métodos
// del Store no toman el lock: lo hacen los repositorios (operación a
// operación) o el TxRunner (transacción completa).
type Store struct {
	mu sync.RWMutex

	products     map[string]*entity.Product
	productOrder []string // IDs en orden de creación

	movements []*entity.Movement // ledger append-only, orden de creación
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{products: make(map[string]*entity.Product)}
}

func (s *Store) getProduct(id string) *entity.Product {
	p, ok := s.products[id]
	if !ok {
		return nil
	}
	clone := *p
	return &clone
}

func (s *Store) getProductBySKU(sku string) *entity.Product {
	for _, p := range s.products {
		if p.SKU == sku {
			clone := *p
			return &clone
		}
	}
	return nil
}

func (s *Store) insertProduct(p *entity.Product) {
	clone := *p
	s.products[p.ID] = &clone
	s.productOrder = append(s.productOrder, p.ID)
}

func (s *Store) replaceProduct(p *entity.Product) {
	clone := *p
	s.products[p.ID] = &clone
}

func (s *Store) setStock(productID string, newStock int) {
	if p, ok := s.products[productID]; ok {
		p.CurrentStock = newStock
	}
}

// productsNewestFirst devuelve copias en orden de creación descendente.
// El orden de inserción evita empates de timestamp no deterministas.
func (s *Store) productsNewestFirst() []*entity.Product {
	list := make([]*entity.Product, 0, len(s.productOrder))
	for i := len(s.productOrder) - 1; i >= 0; i-- {
		clone := *s.products[s.productOrder[i]]
		list = append(list, &clone)
	}
	return list
}

// productsInAlert filtra CurrentStock <= MinStock y ordena por ratio
// ascendente (más crítico primero), desempate por SKU.
func (s *Store) productsInAlert() []*entity.Product {
	var list []*entity.Product
	for _, id := range s.productOrder {
		p := s.products[id]
		if p.InAlert() {
			clone := *p
			list = append(list, &clone)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		ri, rj := list[i].StockRatio(), list[j].StockRatio()
		if ri != rj {
			return ri < rj
		}
		return list[i].SKU < list[j].SKU
	})
	return list
}

func (s *Store) appendMovement(m *entity.Movement) {
	clone := *m
	s.movements = append(s.movements, &clone)
}

// movementsNewestFirst devuelve movimientos enriquecidos con el producto,
// más recientes primero. limit <= 0 devuelve todos.
func (s *Store) movementsNewestFirst(limit int) []*entity.MovementWithProduct {
	n := len(s.movements)
	if limit <= 0 || limit > n {
		limit = n
	}
	list := make([]*entity.MovementWithProduct, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		m := s.movements[i]
		enriched := &entity.MovementWithProduct{Movement: *m}
		if p, ok := s.products[m.ProductID]; ok {
			enriched.ProductName = p.Name
			enriched.ProductSKU = p.SKU
		}
		list = append(list, enriched)
	}
	return list
}

func (s *Store) countStats(dayStart, dayEnd time.Time) (total, inAlert, entries, exits int) {
	total = len(s.products)
	for _, p := range s.products {
		if p.InAlert() {
			inAlert++
		}
	}
	for _, m := range s.movements {
		if m.CreatedAt.Before(dayStart) || !m.CreatedAt.Before(dayEnd) {
			continue
		}
		if m.Type == entity.MovementTypeSaida {
			exits++
		} else {
			entries++
		}
	}
	return total, inAlert, entries, exits
}
