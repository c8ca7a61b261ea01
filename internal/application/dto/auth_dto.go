package dto

import "github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"

// LoginRequest credenciales enviadas a POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse respuesta de un login exitoso. roles y permissions vienen
// aplanados como listas de nombres.
type LoginResponse struct {
	User        entity.User `json:"user"`
	Token       string      `json:"token"`
	Roles       []string    `json:"roles"`
	Permissions []string    `json:"permissions"`
}
