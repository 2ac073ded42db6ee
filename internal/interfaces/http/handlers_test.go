package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bxrgzz/StockFlow-Manager/internal/application/inventory"
	"github.com/bxrgzz/StockFlow-Manager/internal/application/usecase"
	"github.com/bxrgzz/StockFlow-Manager/internal/infrastructure/memory"
	apphttp "github.com/bxrgzz/StockFlow-Manager/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación Fiber completa sobre el backend en
// memoria: mismo router y handlers que producción.
func buildTestApp() *fiber.App {
	store := memory.NewStore()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:  usecase.NewProductUseCase(memory.NewProductRepository(store)),
		MovementUC: inventory.NewMovementUseCase(memory.NewTxRunner(store), memory.NewMovementRepository(store)),
		StatsUC:    usecase.NewStatsUseCase(memory.NewStatsRepository(store)),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func createProduct(t *testing.T, app *fiber.App, sku string, currentStock, minStock int) map[string]any {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/products", map[string]any{
		"sku":          sku,
		"name":         "Producto " + sku,
		"currentStock": currentStock,
		"minStock":     minStock,
		"unit":         "un",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out map[string]any
	decodeBody(t, resp, &out)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_CrearYListar(t *testing.T) {
	app := buildTestApp()

	created := createProduct(t, app, "SKU-001", 10, 5)
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, float64(10), created["currentStock"])
	assert.Nil(t, created["description"], "descripción ausente serializa como null")

	resp := doJSON(t, app, http.MethodGet, "/api/products", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	decodeBody(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "SKU-001", list[0]["sku"])
}

func TestProducts_ValidacionDeEsquema(t *testing.T) {
	app := buildTestApp()

	cases := []struct {
		name string
		body map[string]any
	}{
		{"sin sku", map[string]any{"name": "X", "unit": "un"}},
		{"sin name", map[string]any{"sku": "SKU-001", "unit": "un"}},
		{"sin unit", map[string]any{"sku": "SKU-001", "name": "X"}},
		{"stock negativo", map[string]any{"sku": "SKU-001", "name": "X", "unit": "un", "currentStock": -1}},
		{"minimo negativo", map[string]any{"sku": "SKU-001", "name": "X", "unit": "un", "minStock": -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/products", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			assert.Contains(t, string(body), "VALIDATION")
		})
	}
}

func TestProducts_SKUDuplicadoRetorna400(t *testing.T) {
	app := buildTestApp()
	createProduct(t, app, "SKU-001", 10, 5)

	resp := doJSON(t, app, http.MethodPost, "/api/products", map[string]any{
		"sku": "SKU-001", "name": "Otro", "unit": "un",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "DUPLICATE_SKU")
}

func TestProducts_GetPorID(t *testing.T) {
	app := buildTestApp()
	created := createProduct(t, app, "SKU-001", 10, 5)

	resp := doJSON(t, app, http.MethodGet, "/api/products/"+created["id"].(string), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]any
	decodeBody(t, resp, &out)
	assert.Equal(t, created["id"], out["id"])

	resp = doJSON(t, app, http.MethodGet, "/api/products/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProducts_PatchReemplazaCampos(t *testing.T) {
	app := buildTestApp()
	created := createProduct(t, app, "SKU-001", 10, 5)

	resp := doJSON(t, app, http.MethodPatch, "/api/products/"+created["id"].(string), map[string]any{
		"sku": "SKU-001", "name": "Renombrado", "unit": "kg", "currentStock": 3, "minStock": 1,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]any
	decodeBody(t, resp, &out)
	assert.Equal(t, "Renombrado", out["name"])
	assert.Equal(t, float64(3), out["currentStock"])
	assert.Equal(t, created["createdAt"], out["createdAt"])

	resp = doJSON(t, app, http.MethodPatch, "/api/products/no-existe", map[string]any{
		"sku": "SKU-002", "name": "X", "unit": "un",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProducts_Alertas(t *testing.T) {
	app := buildTestApp()
	createProduct(t, app, "SKU-CRITICO", 1, 10) // ratio 0.1
	createProduct(t, app, "SKU-UMBRAL", 5, 5)   // ratio 1.0
	createProduct(t, app, "SKU-OK", 20, 5)      // fuera de alerta

	resp := doJSON(t, app, http.MethodGet, "/api/products/alerts", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	decodeBody(t, resp, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "SKU-CRITICO", list[0]["sku"])
	assert.Equal(t, "SKU-UMBRAL", list[1]["sku"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Movements
// ──────────────────────────────────────────────────────────────────────────────

func TestMovements_CrearEntrada(t *testing.T) {
	app := buildTestApp()
	created := createProduct(t, app, "SKU-001", 10, 5)

	resp := doJSON(t, app, http.MethodPost, "/api/movements", map[string]any{
		"productId":   created["id"],
		"type":        "entrada",
		"quantity":    7,
		"responsible": "almacenista",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out map[string]any
	decodeBody(t, resp, &out)
	assert.Equal(t, float64(10), out["previousStock"])
	assert.Equal(t, float64(17), out["newStock"])
	assert.Nil(t, out["notes"])
}

// previousStock/newStock enviados por el cliente se ignoran: los calcula el servidor.
func TestMovements_IgnoraStocksDelCliente(t *testing.T) {
	app := buildTestApp()
	created := createProduct(t, app, "SKU-001", 10, 5)

	resp := doJSON(t, app, http.MethodPost, "/api/movements", map[string]any{
		"productId":     created["id"],
		"type":          "saida",
		"quantity":      2,
		"responsible":   "almacenista",
		"previousStock": 999,
		"newStock":      999,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out map[string]any
	decodeBody(t, resp, &out)
	assert.Equal(t, float64(10), out["previousStock"])
	assert.Equal(t, float64(8), out["newStock"])
}

func TestMovements_ProductoInexistenteRetorna404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/movements", map[string]any{
		"productId":   "no-existe",
		"type":        "entrada",
		"quantity":    1,
		"responsible": "almacenista",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMovements_StockInsuficienteRetorna400(t *testing.T) {
	app := buildTestApp()
	created := createProduct(t, app, "SKU-001", 2, 0)

	resp := doJSON(t, app, http.MethodPost, "/api/movements", map[string]any{
		"productId":   created["id"],
		"type":        "saida",
		"quantity":    100,
		"responsible": "almacenista",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "INSUFFICIENT_STOCK")

	// El stock quedó intacto.
	resp = doJSON(t, app, http.MethodGet, "/api/products/"+created["id"].(string), nil)
	var out map[string]any
	decodeBody(t, resp, &out)
	assert.Equal(t, float64(2), out["currentStock"])
}

func TestMovements_ValidacionDeEsquema(t *testing.T) {
	app := buildTestApp()
	created := createProduct(t, app, "SKU-001", 10, 5)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"tipo desconocido", map[string]any{"productId": created["id"], "type": "ajuste", "quantity": 1, "responsible": "x"}},
		{"cantidad cero", map[string]any{"productId": created["id"], "type": "entrada", "quantity": 0, "responsible": "x"}},
		{"sin responsable", map[string]any{"productId": created["id"], "type": "entrada", "quantity": 1}},
		{"sin producto", map[string]any{"type": "entrada", "quantity": 1, "responsible": "x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/movements", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestMovements_ListadoEnriquecido(t *testing.T) {
	app := buildTestApp()
	created := createProduct(t, app, "SKU-001", 10, 5)

	for i := 0; i < 2; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/movements", map[string]any{
			"productId":   created["id"],
			"type":        "entrada",
			"quantity":    1,
			"responsible": "almacenista",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/movements", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	decodeBody(t, resp, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "Producto SKU-001", list[0]["productName"])
	assert.Equal(t, "SKU-001", list[0]["productSku"])
}

func TestMovements_RecentConLimite(t *testing.T) {
	app := buildTestApp()
	created := createProduct(t, app, "SKU-001", 100, 0)

	for i := 0; i < 12; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/movements", map[string]any{
			"productId":   created["id"],
			"type":        "saida",
			"quantity":    1,
			"responsible": "almacenista",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	// Sin limit aplica el default de 10.
	resp := doJSON(t, app, http.MethodGet, "/api/movements/recent", nil)
	var list []map[string]any
	decodeBody(t, resp, &list)
	assert.Len(t, list, 10)

	resp = doJSON(t, app, http.MethodGet, "/api/movements/recent?limit=3", nil)
	decodeBody(t, resp, &list)
	assert.Len(t, list, 3)

	// limit no numérico cae al default.
	resp = doJSON(t, app, http.MethodGet, "/api/movements/recent?limit=abc", nil)
	decodeBody(t, resp, &list)
	assert.Len(t, list, 10)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stats
// ──────────────────────────────────────────────────────────────────────────────

func TestStats_ContadoresDelDia(t *testing.T) {
	app := buildTestApp()
	created := createProduct(t, app, "SKU-001", 10, 20) // en alerta desde el inicio

	for _, movType := range []string{"entrada", "entrada", "saida"} {
		resp := doJSON(t, app, http.MethodPost, "/api/movements", map[string]any{
			"productId":   created["id"],
			"type":        movType,
			"quantity":    1,
			"responsible": "almacenista",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/stats", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]any
	decodeBody(t, resp, &out)
	assert.Equal(t, float64(1), out["totalProducts"])
	assert.Equal(t, float64(1), out["productsInAlert"])
	assert.Equal(t, float64(2), out["todayEntries"])
	assert.Equal(t, float64(1), out["todayExits"])
}

// Las rutas de listado devuelven arreglos JSON vacíos, nunca null.
func TestListadosVacios(t *testing.T) {
	app := buildTestApp()

	for _, path := range []string{"/api/products", "/api/products/alerts", "/api/movements", "/api/movements/recent"} {
		resp := doJSON(t, app, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Equal(t, "[]", string(bytes.TrimSpace(body)), fmt.Sprintf("%s debe devolver []", path))
	}
}
