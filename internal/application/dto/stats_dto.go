package dto

// StatsResponse respuesta de GET /api/stats con los KPIs del dashboard.
// Se recalcula en cada llamada sobre el snapshot actual (sin caché).
type StatsResponse struct {
	TotalProducts   int `json:"totalProducts"`
	ProductsInAlert int `json:"productsInAlert"`
	TodayEntries    int `json:"todayEntries"` // movimientos "entrada" del día
	TodayExits      int `json:"todayExits"`   // movimientos "saida" del día
}
