package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Alexander08S-C/inventario-frontend/internal/session"
)

// ProfileHandler página de perfil: identidad de la sesión, roles y tema.
type ProfileHandler struct {
	sess *session.Store
}

// NewProfileHandler construye el handler.
func NewProfileHandler(sess *session.Store) *ProfileHandler {
	return &ProfileHandler{sess: sess}
}

// Page GET /profile. Todo sale de la sesión local, sin red.
func (h *ProfileHandler) Page(c *fiber.Ctx) error {
	return c.Render("profile", merge(viewData(h.sess, "Perfil"), fiber.Map{
		"Roles": h.sess.Roles(),
	}), LayoutMain)
}
