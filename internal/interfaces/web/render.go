// Package web capa de presentación del panel: rutas Fiber, middleware de
// sesión y render de plantillas HTML. Cada página sigue el mismo ciclo:
// montar -> pedir datos vía el gateway -> renderizar; tras una mutación se
// relee la lista completa (sin caché que invalidar).
package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/Alexander08S-C/inventario-frontend/internal/domain"
	"github.com/Alexander08S-C/inventario-frontend/internal/session"
)

// LayoutMain plantilla contenedora de todas las páginas autenticadas.
const LayoutMain = "layouts/main"

var moneyPrinter = message.NewPrinter(language.Spanish)

// Money formatea un decimal como moneda para las vistas.
func Money(d decimal.Decimal) string {
	f, _ := d.Float64()
	return "$" + moneyPrinter.Sprintf("%v",
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// viewData datos comunes a todas las plantillas: título, tema y sesión.
func viewData(sess *session.Store, title string) fiber.Map {
	return fiber.Map{
		"Title":    title,
		"DarkMode": sess.DarkMode(),
		"User":     sess.User(),
		"IsAdmin":  sess.HasRole("admin"),
	}
}

// merge agrega pares clave/valor al mapa base y lo devuelve.
func merge(base fiber.Map, extra fiber.Map) fiber.Map {
	for k, v := range extra {
		base[k] = v
	}
	return base
}

// redirectOnAuthError cierre central del hueco de 401: si el backend rechazó
// la credencial a mitad de sesión, se descarta la sesión local y se vuelve a
// /login en lugar de dejar la página colgada.
func redirectOnAuthError(c *fiber.Ctx, sess *session.Store, err error) (bool, error) {
	if errors.Is(err, domain.ErrUnauthorized) {
		sess.Logout()
		return true, c.Redirect("/login")
	}
	return false, nil
}

// formErrors extrae el mapa campo -> primer mensaje de un 422, o nil.
func formErrors(err error) map[string]string {
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		return nil
	}
	out := make(map[string]string, len(vErr.Errors))
	for field, msgs := range vErr.Errors {
		if len(msgs) > 0 {
			out[field] = msgs[0]
		}
	}
	return out
}
