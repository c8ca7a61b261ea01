package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Alexander08S-C/inventario-frontend/internal/session"
)

// RequireAuth protege las páginas del panel: sin sesión se redirige a /login.
// Un token JWT ya vencido se descarta aquí mismo en lugar de dejar que cada
// página falle con 401 contra el backend.
func RequireAuth(sess *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !sess.Authenticated() {
			return c.Redirect("/login")
		}
		if sess.TokenExpired() {
			sess.Logout()
			return c.Redirect("/login")
		}
		return c.Next()
	}
}

// RequireRole restringe una ruta a un rol concreto (ej. /users a admin).
func RequireRole(sess *session.Store, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !sess.HasRole(role) {
			return c.Status(fiber.StatusForbidden).Render("error", merge(
				viewData(sess, "Acceso denegado"),
				fiber.Map{"Message": "No tienes permisos para ver esta página."},
			), LayoutMain)
		}
		return c.Next()
	}
}
