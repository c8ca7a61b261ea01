package web

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/sales"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/usecase"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain"
	"github.com/Alexander08S-C/inventario-frontend/internal/session"
)

// SaleHandler página de ventas: listado, borrador de venta nueva, cancelación
// con confirmación y descarga del recibo.
type SaleHandler struct {
	sales   *sales.UseCase
	catalog *usecase.CatalogUseCase
	sess    *session.Store
}

// NewSaleHandler construye el handler.
func NewSaleHandler(s *sales.UseCase, cat *usecase.CatalogUseCase, sess *session.Store) *SaleHandler {
	return &SaleHandler{sales: s, catalog: cat, sess: sess}
}

// flashes mensajes de éxito tras un redirect.
var saleFlashes = map[string]string{
	"registrada": "Venta registrada correctamente",
	"cancelada":  "Venta cancelada; el stock fue restaurado",
}

// List GET /sales.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	return h.renderList(c, "", saleFlashes[c.Query("ok")])
}

// renderList arma la página completa: ventas, catálogo de productos para el
// formulario y el borrador vigente con su total estimado.
func (h *SaleHandler) renderList(c *fiber.Ctx, errMsg, okMsg string) error {
	list, err := h.sales.List(c.Context())
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

	draft := h.sales.Draft()
	return c.Render("sales", merge(viewData(h.sess, "Ventas"), fiber.Map{
		"Sales":    list,
		"Products": products,
		"Draft":    draft,
		"Total":    h.sales.Total(products),
		"Error":    errMsg,
		"Success":  okMsg,
	}), LayoutMain)
}

// syncDraft vuelca el formulario completo al borrador antes de aplicar
// cualquier operación: en render del lado servidor cada botón envía el
// formulario entero, así no se pierden ediciones intermedias.
func (h *SaleHandler) syncDraft(c *fiber.Ctx) {
	h.sales.SetHeader(c.FormValue("customer_name"), c.FormValue("notes"))
	for i := range h.sales.Draft().Lines {
		h.sales.UpdateLine(i, sales.FieldProductID, c.FormValue(fmt.Sprintf("product_id_%d", i)))
		h.sales.UpdateLine(i, sales.FieldQuantity, c.FormValue(fmt.Sprintf("quantity_%d", i)))
	}
}

// AddLine POST /sales/draft/add.
func (h *SaleHandler) AddLine(c *fiber.Ctx) error {
	h.syncDraft(c)
	h.sales.AddLine()
	return c.Redirect("/sales")
}

// RemoveLine POST /sales/draft/remove/:index. Quitar el último renglón es un
// no-op dentro del motor; aquí no se valida nada.
func (h *SaleHandler) RemoveLine(c *fiber.Ctx) error {
	h.syncDraft(c)
	index, err := c.ParamsInt("index")
	if err == nil {
		h.sales.RemoveLine(index)
	}
	return c.Redirect("/sales")
}

// CancelDraft POST /sales/draft/cancel: descarta el borrador sin red.
func (h *SaleHandler) CancelDraft(c *fiber.Ctx) error {
	h.sales.CancelDraft()
	return c.Redirect("/sales")
}

// Submit POST /sales: registra el borrador. Un rechazo del backend deja el
// borrador intacto y muestra su mensaje; solo el éxito lo reinicia.
func (h *SaleHandler) Submit(c *fiber.Ctx) error {
	h.syncDraft(c)
	if err := h.sales.Submit(c.Context()); err != nil {
		if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
			return resp
		}
		return h.renderList(c, domain.UserMessage(err), "")
	}
	return c.Redirect("/sales?ok=registrada")
}

// ConfirmCancel GET /sales/:id/cancel: página de confirmación previa a la
// cancelación (mutación remota destructiva).
func (h *SaleHandler) ConfirmCancel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/sales")
	}
	sale, err := h.sales.Get(c.Context(), int64(id))
	if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
		return resp
	}
	if err != nil {
		return h.renderList(c, domain.UserMessage(err), "")
	}
	return c.Render("sale_cancel", merge(viewData(h.sess, "Cancelar Venta"), fiber.Map{
		"Sale": sale,
	}), LayoutMain)
}

// Cancel POST /sales/:id/cancel. El mensaje de un rechazo del backend se
// muestra textualmente; la lista no cambia hasta el próximo refetch.
func (h *SaleHandler) Cancel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/sales")
	}
	if err := h.sales.CancelSale(c.Context(), int64(id)); err != nil {
		if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
			return resp
		}
		return h.renderList(c, domain.UserMessage(err), "")
	}
	return c.Redirect("/sales?ok=cancelada")
}

// Receipt GET /sales/:id/receipt: descarga el recibo en PDF.
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/sales")
	}
	pdf, err := h.sales.Receipt(c.Context(), int64(id))
	if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
		return resp
	}
	if err != nil {
		return h.renderList(c, domain.UserMessage(err), "")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="venta-%d.pdf"`, id))
	return c.Send(pdf)
}
