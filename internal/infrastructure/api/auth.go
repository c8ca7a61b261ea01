package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/ports"
)

var _ ports.AuthAPI = (*AuthAPI)(nil)

// AuthAPI adaptador de autenticación sobre el cliente HTTP.
type AuthAPI struct {
	c *Client
}

// NewAuthAPI construye el adaptador.
func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{c: c}
}

// Login POST /login. La respuesta trae user, token, roles y permissions.
func (a *AuthAPI) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	body, err := a.c.post(ctx, "/login", in)
	if err != nil {
		return nil, err
	}
	var res dto.LoginResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decodificar respuesta de login: %w", err)
	}
	return &res, nil
}

// Logout POST /logout. El llamador trata el fallo como no fatal.
func (a *AuthAPI) Logout(ctx context.Context) error {
	_, err := a.c.post(ctx, "/logout", nil)
	return err
}
