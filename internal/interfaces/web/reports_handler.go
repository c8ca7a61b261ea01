package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/usecase"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain"
	"github.com/Alexander08S-C/inventario-frontend/internal/session"
)

// ReportHandler página de reportes y sus dos exportaciones descargables.
type ReportHandler struct {
	reports *usecase.ReportUseCase
	sess    *session.Store
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *usecase.ReportUseCase, sess *session.Store) *ReportHandler {
	return &ReportHandler{reports: reports, sess: sess}
}

// Page GET /reports.
func (h *ReportHandler) Page(c *fiber.Ctx) error {
	data, err := h.reports.Overview(c.Context())
	if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
		return resp
	}
	view := viewData(h.sess, "Reportes")
	if err != nil {
		view["Error"] = domain.UserMessage(err)
	} else {
		view["Data"] = data
		view["TotalValue"] = Money(data.Summary.TotalValue)
	}
	return c.Render("reports", view, LayoutMain)
}

// ExportPDF GET /reports/export/pdf.
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	out, err := h.reports.ExportPDF(c.Context())
	if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
		return resp
	}
	if err != nil {
		return c.Redirect("/reports")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-inventario.pdf"`)
	return c.Send(out)
}

// ExportExcel GET /reports/export/excel.
func (h *ReportHandler) ExportExcel(c *fiber.Ctx) error {
	out, err := h.reports.ExportExcel(c.Context())
	if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
		return resp
	}
	if err != nil {
		return c.Redirect("/reports")
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-inventario.xlsx"`)
	return c.Send(out)
}
