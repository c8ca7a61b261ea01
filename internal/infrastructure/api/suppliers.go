package api

import (
	"context"
	"fmt"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/ports"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
)

var _ ports.SupplierAPI = (*SupplierAPI)(nil)

// SupplierAPI adaptador del CRUD de proveedores.
type SupplierAPI struct {
	c *Client
}

// NewSupplierAPI construye el adaptador.
func NewSupplierAPI(c *Client) *SupplierAPI {
	return &SupplierAPI{c: c}
}

// List GET /suppliers.
func (a *SupplierAPI) List(ctx context.Context) ([]entity.Supplier, error) {
	body, err := a.c.get(ctx, "/suppliers", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Supplier](body)
}

// Create POST /suppliers.
func (a *SupplierAPI) Create(ctx context.Context, in dto.SupplierRequest) error {
	_, err := a.c.post(ctx, "/suppliers", in)
	return err
}

// Update PUT /suppliers/:id.
func (a *SupplierAPI) Update(ctx context.Context, id int64, in dto.SupplierRequest) error {
	_, err := a.c.put(ctx, fmt.Sprintf("/suppliers/%d", id), in)
	return err
}

// Delete DELETE /suppliers/:id.
func (a *SupplierAPI) Delete(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/suppliers/%d", id))
}
