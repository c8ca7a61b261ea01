package api

import (
	"context"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/ports"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
)

var _ ports.StockAPI = (*StockAPI)(nil)

// StockAPI adaptador de movimientos de stock.
type StockAPI struct {
	c *Client
}

// NewStockAPI construye el adaptador.
func NewStockAPI(c *Client) *StockAPI {
	return &StockAPI{c: c}
}

// List GET /stock-movements?type=. Tipo vacío lista todos.
func (a *StockAPI) List(ctx context.Context, movType string) ([]entity.StockMovement, error) {
	query := map[string]string{}
	if movType != "" {
		query["type"] = movType
	}
	body, err := a.c.get(ctx, "/stock-movements", query)
	if err != nil {
		return nil, err
	}
	return decodeList[entity.StockMovement](body)
}

// Create POST /stock-movements. El backend calcula y devuelve el stock
// antes/después del movimiento.
func (a *StockAPI) Create(ctx context.Context, in dto.MovementRequest) (*entity.StockMovement, error) {
	body, err := a.c.post(ctx, "/stock-movements", in)
	if err != nil {
		return nil, err
	}
	return decodeObject[entity.StockMovement](body)
}
