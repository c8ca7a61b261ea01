package api

import (
	"context"
	"fmt"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/ports"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
)

var _ ports.UserAPI = (*UserAPI)(nil)

// UserAPI adaptador de administración de usuarios.
type UserAPI struct {
	c *Client
}

// NewUserAPI construye el adaptador.
func NewUserAPI(c *Client) *UserAPI {
	return &UserAPI{c: c}
}

// List GET /users.
func (a *UserAPI) List(ctx context.Context) ([]entity.User, error) {
	body, err := a.c.get(ctx, "/users", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[entity.User](body)
}

// Roles GET /roles.
func (a *UserAPI) Roles(ctx context.Context) ([]entity.Role, error) {
	body, err := a.c.get(ctx, "/roles", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Role](body)
}

// Create POST /users.
func (a *UserAPI) Create(ctx context.Context, in dto.UserRequest) error {
	_, err := a.c.post(ctx, "/users", in)
	return err
}

// Update PUT /users/:id.
func (a *UserAPI) Update(ctx context.Context, id int64, in dto.UserRequest) error {
	_, err := a.c.put(ctx, fmt.Sprintf("/users/%d", id), in)
	return err
}

// Delete DELETE /users/:id.
func (a *UserAPI) Delete(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/users/%d", id))
}
