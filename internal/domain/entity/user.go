package entity

import "time"

// User identidad de un usuario tal como la entrega el backend.
// El panel nunca ve contraseñas ni hashes.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Roles     []Role    `json:"roles,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Role rol asignable a un usuario (catálogo del backend).
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
