// Package ports declara los puertos hacia el backend REST. Cada página
// depende de una de estas interfaces, nunca del cliente HTTP concreto.
package ports

import (
	"context"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
)

// AuthAPI autenticación contra el backend.
type AuthAPI interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout invalida el token en el backend. Es best-effort: el llamador
	// limpia la sesión local aunque esta llamada falle.
	Logout(ctx context.Context) error
}

// ProductAPI CRUD de productos (listado paginado).
type ProductAPI interface {
	List(ctx context.Context, page int, search string) (*dto.ProductPage, error)
	Get(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, in dto.ProductRequest) error
	Update(ctx context.Context, id int64, in dto.ProductRequest) error
	Delete(ctx context.Context, id int64) error
}

// CategoryAPI CRUD de categorías.
type CategoryAPI interface {
	List(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, in dto.CategoryRequest) error
	Update(ctx context.Context, id int64, in dto.CategoryRequest) error
	Delete(ctx context.Context, id int64) error
}

// SupplierAPI CRUD de proveedores.
type SupplierAPI interface {
	List(ctx context.Context) ([]entity.Supplier, error)
	Create(ctx context.Context, in dto.SupplierRequest) error
	Update(ctx context.Context, id int64, in dto.SupplierRequest) error
	Delete(ctx context.Context, id int64) error
}

// UserAPI administración de usuarios y catálogo de roles.
type UserAPI interface {
	List(ctx context.Context) ([]entity.User, error)
	Roles(ctx context.Context) ([]entity.Role, error)
	Create(ctx context.Context, in dto.UserRequest) error
	Update(ctx context.Context, id int64, in dto.UserRequest) error
	Delete(ctx context.Context, id int64) error
}

// SaleAPI ventas: listado, detalle, registro del borrador y cancelación.
type SaleAPI interface {
	List(ctx context.Context) ([]entity.Sale, error)
	Get(ctx context.Context, id int64) (*entity.Sale, error)
	Create(ctx context.Context, in dto.CreateSaleRequest) error
	// Cancel solicita PUT /sales/:id/cancel. Si el backend rechaza (venta ya
	// cancelada), el error conserva su mensaje textual.
	Cancel(ctx context.Context, id int64) error
}

// StockAPI movimientos de stock.
type StockAPI interface {
	List(ctx context.Context, movType string) ([]entity.StockMovement, error)
	Create(ctx context.Context, in dto.MovementRequest) (*entity.StockMovement, error)
}

// ReportAPI agregados de solo lectura.
type ReportAPI interface {
	Summary(ctx context.Context) (*entity.ReportSummary, error)
	LowStock(ctx context.Context) ([]entity.Product, error)
	ByCategory(ctx context.Context) ([]entity.CategoryReport, error)
}
