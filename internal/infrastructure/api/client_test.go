package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexander08S-C/inventario-frontend/internal/domain"
	"github.com/Alexander08S-C/inventario-frontend/internal/infrastructure/api"
	"github.com/Alexander08S-C/inventario-frontend/pkg/config"
	"github.com/Alexander08S-C/inventario-frontend/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func clienteContra(t *testing.T, handler http.HandlerFunc, token func() string) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.APIConfig{BaseURL: srv.URL, TimeoutSeconds: 5}
	return api.NewClient(cfg, token, logger.Nop())
}

func sinToken() string { return "" }

// ──────────────────────────────────────────────────────────────────────────────
// Credencial bearer
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_TokenFrescoEnCadaPeticion(t *testing.T) {
	var recibidos []string
	handler := func(w http.ResponseWriter, r *http.Request) {
		recibidos = append(recibidos, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]any{})
	}

	token := "primero"
	cat := api.NewCategoryAPI(clienteContra(t, handler, func() string { return token }))

	_, err := cat.List(context.Background())
	require.NoError(t, err)

	token = "segundo"
	_, err = cat.List(context.Background())
	require.NoError(t, err)

	require.Len(t, recibidos, 2)
	assert.Equal(t, "Bearer primero", recibidos[0])
	assert.Equal(t, "Bearer segundo", recibidos[1], "un cambio de token entre peticiones se respeta de inmediato")
}

func TestClient_SinToken_SinHeaderAuthorization(t *testing.T) {
	var auth string
	handler := func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]any{})
	}

	cat := api.NewCategoryAPI(clienteContra(t, handler, sinToken))
	_, err := cat.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, auth)
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de errores
// ──────────────────────────────────────────────────────────────────────────────

func respondeStatus(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestClient_401_ErrUnauthorized(t *testing.T) {
	cat := api.NewCategoryAPI(clienteContra(t, respondeStatus(401, `{"message":"Unauthenticated."}`), sinToken))

	_, err := cat.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClient_403_ErrForbidden(t *testing.T) {
	cat := api.NewCategoryAPI(clienteContra(t, respondeStatus(403, `{}`), sinToken))

	_, err := cat.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestClient_404_ErrNotFound(t *testing.T) {
	cat := api.NewCategoryAPI(clienteContra(t, respondeStatus(404, `{}`), sinToken))

	_, err := cat.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_422_ValidationErrorConCampos(t *testing.T) {
	body := `{"message":"Los datos no son válidos","errors":{"name":["El nombre es obligatorio"],"price":["El precio debe ser positivo"]}}`
	cat := api.NewCategoryAPI(clienteContra(t, respondeStatus(422, body), sinToken))

	_, err := cat.List(context.Background())

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Los datos no son válidos", vErr.Message)
	assert.Equal(t, "El nombre es obligatorio", vErr.Field("name"))
	assert.Equal(t, "El precio debe ser positivo", vErr.Field("price"))
	assert.Empty(t, vErr.Field("stock"), "campo sin errores devuelve vacío")
}

func TestClient_500_APIErrorConMensaje(t *testing.T) {
	cat := api.NewCategoryAPI(clienteContra(t, respondeStatus(500, `{"message":"Error interno"}`), sinToken))

	_, err := cat.List(context.Background())

	var aErr *domain.APIError
	require.ErrorAs(t, err, &aErr)
	assert.Equal(t, 500, aErr.Status)
	assert.Equal(t, "Error interno", aErr.Message)
}

func TestClient_BackendCaido_ErrUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // puerto cerrado: fallo de transporte

	cfg := config.APIConfig{BaseURL: srv.URL, TimeoutSeconds: 1}
	cat := api.NewCategoryAPI(api.NewClient(cfg, sinToken, logger.Nop()))

	_, err := cat.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sobres de respuesta: desnudo vs {data: ...}
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_ListadoDesnudo(t *testing.T) {
	body := `[{"id":1,"name":"Bebidas"},{"id":2,"name":"Snacks"}]`
	cat := api.NewCategoryAPI(clienteContra(t, respondeStatus(200, body), sinToken))

	list, err := cat.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bebidas", list[0].Name)
}

func TestClient_ListadoEnvuelto(t *testing.T) {
	body := `{"data":[{"id":1,"name":"Bebidas"}]}`
	cat := api.NewCategoryAPI(clienteContra(t, respondeStatus(200, body), sinToken))

	list, err := cat.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Bebidas", list[0].Name)
}

func TestClient_ProductosPaginados(t *testing.T) {
	var q string
	handler := func(w http.ResponseWriter, r *http.Request) {
		q = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data":[{"id":1,"sku":"A-1","name":"Café","price":"10.50","stock":4,"stock_min":5}],
			"meta":{"from":1,"to":1,"total":41,"last_page":3}
		}`))
	}

	prod := api.NewProductAPI(clienteContra(t, handler, sinToken))
	page, err := prod.List(context.Background(), 2, "café")

	require.NoError(t, err)
	assert.Contains(t, q, "page=2")
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Café", page.Items[0].Name)
	assert.True(t, page.Items[0].LowStock())
	assert.Equal(t, 41, page.Meta.Total)
	assert.Equal(t, 3, page.Meta.LastPage)
	assert.True(t, page.HasNext(2))
	assert.True(t, page.HasPrev(2))
	assert.False(t, page.HasNext(3))
}
