package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/usecase"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain"
	"github.com/Alexander08S-C/inventario-frontend/internal/session"
)

// DashboardHandler tarjetas de resumen del inventario.
type DashboardHandler struct {
	reports *usecase.ReportUseCase
	sess    *session.Store
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(reports *usecase.ReportUseCase, sess *session.Store) *DashboardHandler {
	return &DashboardHandler{reports: reports, sess: sess}
}

// Page GET /dashboard.
func (h *DashboardHandler) Page(c *fiber.Ctx) error {
	data, err := h.reports.Overview(c.Context())
	if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
		return resp
	}
	view := viewData(h.sess, "Dashboard")
	if err != nil {
		view["Error"] = domain.UserMessage(err)
	} else {
		view["Summary"] = data.Summary
		view["LowStock"] = data.LowStock
		view["TotalValue"] = Money(data.Summary.TotalValue)
	}
	return c.Render("dashboard", view, LayoutMain)
}
