package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/usecase"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
	"github.com/Alexander08S-C/inventario-frontend/internal/session"
)

// StockHandler movimientos de stock: listado filtrado por tipo y registro.
type StockHandler struct {
	stock   *usecase.StockUseCase
	catalog *usecase.CatalogUseCase
	sess    *session.Store
}

// NewStockHandler construye el handler.
func NewStockHandler(stock *usecase.StockUseCase, cat *usecase.CatalogUseCase, sess *session.Store) *StockHandler {
	return &StockHandler{stock: stock, catalog: cat, sess: sess}
}

// List GET /stock-movements?type=.
func (h *StockHandler) List(c *fiber.Ctx) error {
	form := dto.MovementRequest{Type: entity.MovementTypeIn}
	okMsg := ""
	if c.Query("ok") == "1" {
		okMsg = "Movimiento registrado correctamente"
	}
	return h.renderList(c, form, nil, "", okMsg)
}

func (h *StockHandler) renderList(c *fiber.Ctx, form dto.MovementRequest, errs map[string]string, errMsg, okMsg string) error {
	filter := c.Query("type")
	movements, err := h.stock.Movements(c.Context(), filter)
	if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
		return resp
	}
	if err != nil && errMsg == "" {
		errMsg = domain.UserMessage(err)
	}

	products, err := h.catalog.ProductCatalog(c.Context())
	if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
		return resp
	}

	return c.Render("stock", merge(viewData(h.sess, "Movimientos de Stock"), fiber.Map{
		"Movements": movements,
		"Products":  products,
		"Types":     entity.MovementTypes,
		"Filter":    filter,
		"Form":      form,
		"Errors":    errs,
		"Error":     errMsg,
		"Success":   okMsg,
	}), LayoutMain)
}

// Register POST /stock-movements. Un 422 reabre el formulario con los errores
// por campo; el backend calcula el stock resultante.
func (h *StockHandler) Register(c *fiber.Ctx) error {
	form := dto.MovementRequest{
		ProductID: c.FormValue("product_id"),
		Type:      c.FormValue("type"),
		Quantity:  c.FormValue("quantity"),
		Reason:    c.FormValue("reason"),
	}
	if _, err := h.stock.Register(c.Context(), form); err != nil {
		if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
			return resp
		}
		return h.renderList(c, form, formErrors(err), domain.UserMessage(err), "")
	}
	return c.Redirect("/stock-movements?ok=1")
}
