package api

import (
	"context"
	"fmt"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/ports"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
)

var _ ports.SaleAPI = (*SaleAPI)(nil)

// SaleAPI adaptador de ventas.
type SaleAPI struct {
	c *Client
}

// NewSaleAPI construye el adaptador.
func NewSaleAPI(c *Client) *SaleAPI {
	return &SaleAPI{c: c}
}

// List GET /sales.
func (a *SaleAPI) List(ctx context.Context) ([]entity.Sale, error) {
	body, err := a.c.get(ctx, "/sales", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Sale](body)
}

// Get GET /sales/:id, detalle completo para el recibo.
func (a *SaleAPI) Get(ctx context.Context, id int64) (*entity.Sale, error) {
	body, err := a.c.get(ctx, fmt.Sprintf("/sales/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeObject[entity.Sale](body)
}

// Create POST /sales: el borrador completo en una petición atómica. El backend
// valida stock y totales; un 422 vuelve como *ValidationError.
func (a *SaleAPI) Create(ctx context.Context, in dto.CreateSaleRequest) error {
	_, err := a.c.post(ctx, "/sales", in)
	return err
}

// Cancel PUT /sales/:id/cancel. El backend restaura el stock; un rechazo
// (venta ya cancelada) conserva su mensaje textual.
func (a *SaleAPI) Cancel(ctx context.Context, id int64) error {
	_, err := a.c.put(ctx, fmt.Sprintf("/sales/%d/cancel", id), nil)
	return err
}
