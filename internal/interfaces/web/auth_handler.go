package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/auth"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain"
	"github.com/Alexander08S-C/inventario-frontend/internal/session"
)

// AuthHandler páginas de inicio y cierre de sesión, y el toggle de tema.
type AuthHandler struct {
	uc   *auth.UseCase
	sess *session.Store
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase, sess *session.Store) *AuthHandler {
	return &AuthHandler{uc: uc, sess: sess}
}

// LoginPage GET /login. Con sesión vigente salta directo al dashboard.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if h.sess.Authenticated() && !h.sess.TokenExpired() {
		return c.Redirect("/dashboard")
	}
	return c.Render("login", viewData(h.sess, "Iniciar Sesión"))
}

// Login POST /login. Cualquier fallo muestra el mismo mensaje genérico.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	if err := h.uc.Login(c.Context(), email, password); err != nil {
		return c.Render("login", merge(viewData(h.sess, "Iniciar Sesión"), fiber.Map{
			"Error": domain.UserMessage(err),
			"Email": email,
		}))
	}
	return c.Redirect("/dashboard")
}

// Logout POST /logout. El logout local manda: se redirige a /login aunque la
// invalidación remota falle.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout(c.Context())
	return c.Redirect("/login")
}

// ToggleTheme POST /theme/toggle. Vuelve a la página de origen.
func (h *AuthHandler) ToggleTheme(c *fiber.Ctx) error {
	h.sess.ToggleDarkMode()
	if ref := c.Get("Referer"); ref != "" {
		return c.Redirect(ref)
	}
	return c.Redirect("/dashboard")
}
