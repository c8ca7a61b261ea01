package api

import (
	"context"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/ports"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
)

var _ ports.ReportAPI = (*ReportAPI)(nil)

// ReportAPI adaptador de los agregados de solo lectura.
type ReportAPI struct {
	c *Client
}

// NewReportAPI construye el adaptador.
func NewReportAPI(c *Client) *ReportAPI {
	return &ReportAPI{c: c}
}

// Summary GET /reports/summary.
func (a *ReportAPI) Summary(ctx context.Context) (*entity.ReportSummary, error) {
	body, err := a.c.get(ctx, "/reports/summary", nil)
	if err != nil {
		return nil, err
	}
	return decodeObject[entity.ReportSummary](body)
}

// LowStock GET /reports/low-stock.
func (a *ReportAPI) LowStock(ctx context.Context) ([]entity.Product, error) {
	body, err := a.c.get(ctx, "/reports/low-stock", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Product](body)
}

// ByCategory GET /reports/by-category.
func (a *ReportAPI) ByCategory(ctx context.Context) ([]entity.CategoryReport, error) {
	body, err := a.c.get(ctx, "/reports/by-category", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[entity.CategoryReport](body)
}
