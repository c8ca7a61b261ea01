package api

import (
	"context"
	"fmt"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/ports"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
)

var _ ports.CategoryAPI = (*CategoryAPI)(nil)

// CategoryAPI adaptador del CRUD de categorías.
type CategoryAPI struct {
	c *Client
}

// NewCategoryAPI construye el adaptador.
func NewCategoryAPI(c *Client) *CategoryAPI {
	return &CategoryAPI{c: c}
}

// List GET /categories.
func (a *CategoryAPI) List(ctx context.Context) ([]entity.Category, error) {
	body, err := a.c.get(ctx, "/categories", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Category](body)
}

// Create POST /categories.
func (a *CategoryAPI) Create(ctx context.Context, in dto.CategoryRequest) error {
	_, err := a.c.post(ctx, "/categories", in)
	return err
}

// Update PUT /categories/:id.
func (a *CategoryAPI) Update(ctx context.Context, id int64, in dto.CategoryRequest) error {
	_, err := a.c.put(ctx, fmt.Sprintf("/categories/%d", id), in)
	return err
}

// Delete DELETE /categories/:id.
func (a *CategoryAPI) Delete(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/categories/%d", id))
}
