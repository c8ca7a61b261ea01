package usecase

import (
	"context"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/ports"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
)

// UserUseCase administración de usuarios (página restringida a admin).
type UserUseCase struct {
	api ports.UserAPI
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(api ports.UserAPI) *UserUseCase {
	return &UserUseCase{api: api}
}

// Users listado de usuarios con sus roles.
func (uc *UserUseCase) Users(ctx context.Context) ([]entity.User, error) {
	return uc.api.List(ctx)
}

// Roles catálogo de roles asignables.
func (uc *UserUseCase) Roles(ctx context.Context) ([]entity.Role, error) {
	return uc.api.Roles(ctx)
}

// Save crea (id=0) o actualiza un usuario.
func (uc *UserUseCase) Save(ctx context.Context, id int64, in dto.UserRequest) error {
	if id == 0 {
		return uc.api.Create(ctx, in)
	}
	return uc.api.Update(ctx, id, in)
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	return uc.api.Delete(ctx, id)
}
