package web_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
	"github.com/Alexander08S-C/inventario-frontend/internal/interfaces/web"
	"github.com/Alexander08S-C/inventario-frontend/internal/session"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// viewsDir escribe plantillas mínimas para que Render funcione en los tests.
func viewsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "layouts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "layouts", "main.html"), []byte("{{embed}}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "error.html"), []byte("{{.Message}}"), 0o644))
	return dir
}

// buildApp monta una ruta protegida por sesión y otra restringida a admin.
func buildApp(t *testing.T, sess *session.Store) *fiber.App {
	t.Helper()
	engine := html.New(viewsDir(t), ".html")
	app := fiber.New(fiber.Config{Views: engine})

	panel := app.Group("/", web.RequireAuth(sess))
	panel.Get("/panel", func(c *fiber.Ctx) error { return c.SendString("ok") })

	admin := panel.Group("/admin", web.RequireRole(sess, "admin"))
	admin.Get("/", func(c *fiber.Ctx) error { return c.SendString("admin ok") })

	return app
}

func sesionAutenticada(token string, roles ...string) *session.Store {
	s := session.New(nil)
	s.SetAuth(&entity.User{ID: 1, Name: "Ana"}, token, roles, nil)
	return s
}

// jwtConExpiracion firma un JWT HS256 con el exp indicado.
func jwtConExpiracion(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	signed, err := tok.SignedString([]byte("secreto-de-test"))
	require.NoError(t, err)
	return signed
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireAuth
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAuth_SinSesion_RedirigeALogin(t *testing.T) {
	app := buildApp(t, session.New(nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panel", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestRequireAuth_ConSesion_Pasa(t *testing.T) {
	app := buildApp(t, sesionAutenticada("token-opaco"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panel", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAuth_JWTVencido_CierraSesionYRedirige(t *testing.T) {
	sess := sesionAutenticada(jwtConExpiracion(t, time.Now().Add(-time.Hour)), "admin")
	app := buildApp(t, sess)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panel", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.False(t, sess.Authenticated(), "el token vencido descarta la sesión completa")
}

func TestRequireAuth_JWTVigente_Pasa(t *testing.T) {
	app := buildApp(t, sesionAutenticada(jwtConExpiracion(t, time.Now().Add(time.Hour))))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panel", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccede(t *testing.T) {
	app := buildApp(t, sesionAutenticada("tok", "admin"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_VendedorBloqueado(t *testing.T) {
	app := buildApp(t, sesionAutenticada("tok", "vendedor"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
