package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/ports"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
)

var _ ports.ProductAPI = (*ProductAPI)(nil)

// ProductAPI adaptador del CRUD de productos. El listado usa el sobre
// paginado {data, meta:{from,to,total,last_page}}.
type ProductAPI struct {
	c *Client
}

// NewProductAPI construye el adaptador.
func NewProductAPI(c *Client) *ProductAPI {
	return &ProductAPI{c: c}
}

// List GET /products?page=&search=.
func (a *ProductAPI) List(ctx context.Context, page int, search string) (*dto.ProductPage, error) {
	query := map[string]string{"page": strconv.Itoa(page)}
	if search != "" {
		query["search"] = search
	}
	body, err := a.c.get(ctx, "/products", query)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data []entity.Product `json:"data"`
		Meta dto.PageMeta     `json:"meta"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decodificar página de productos: %w", err)
	}
	return &dto.ProductPage{Items: envelope.Data, Meta: envelope.Meta}, nil
}

// Get GET /products/:id.
func (a *ProductAPI) Get(ctx context.Context, id int64) (*entity.Product, error) {
	body, err := a.c.get(ctx, fmt.Sprintf("/products/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeObject[entity.Product](body)
}

// Create POST /products.
func (a *ProductAPI) Create(ctx context.Context, in dto.ProductRequest) error {
	_, err := a.c.post(ctx, "/products", in)
	return err
}

// Update PUT /products/:id.
func (a *ProductAPI) Update(ctx context.Context, id int64, in dto.ProductRequest) error {
	_, err := a.c.put(ctx, fmt.Sprintf("/products/%d", id), in)
	return err
}

// Delete DELETE /products/:id.
func (a *ProductAPI) Delete(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/products/%d", id))
}
