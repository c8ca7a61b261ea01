// Package usecase casos de uso finos de las páginas de entidades: cada página
// sigue el mismo ciclo listar -> editar -> enviar -> relistar, delegando toda
// la lógica de negocio al backend.
package usecase

import (
	"context"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/ports"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
)

// CatalogUseCase productos, categorías y proveedores.
type CatalogUseCase struct {
	products   ports.ProductAPI
	categories ports.CategoryAPI
	suppliers  ports.SupplierAPI
}

// NewCatalogUseCase construye el caso de uso del catálogo.
func NewCatalogUseCase(p ports.ProductAPI, c ports.CategoryAPI, s ports.SupplierAPI) *CatalogUseCase {
	return &CatalogUseCase{products: p, categories: c, suppliers: s}
}

// Products página de productos (listado paginado con búsqueda).
func (uc *CatalogUseCase) Products(ctx context.Context, page int, search string) (*dto.ProductPage, error) {
	if page < 1 {
		page = 1
	}
	return uc.products.List(ctx, page, search)
}

// ProductCatalog primera página sin filtro, usada como catálogo de los
// selects de venta y movimientos.
func (uc *CatalogUseCase) ProductCatalog(ctx context.Context) ([]entity.Product, error) {
	pg, err := uc.products.List(ctx, 1, "")
	if err != nil {
		return nil, err
	}
	return pg.Items, nil
}

// Product detalle de un producto para el formulario de edición.
func (uc *CatalogUseCase) Product(ctx context.Context, id int64) (*entity.Product, error) {
	return uc.products.Get(ctx, id)
}

// SaveProduct crea (id=0) o actualiza un producto.
func (uc *CatalogUseCase) SaveProduct(ctx context.Context, id int64, in dto.ProductRequest) error {
	if id == 0 {
		return uc.products.Create(ctx, in)
	}
	return uc.products.Update(ctx, id, in)
}

// DeleteProduct elimina un producto.
func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return uc.products.Delete(ctx, id)
}

// Categories listado completo de categorías.
func (uc *CatalogUseCase) Categories(ctx context.Context) ([]entity.Category, error) {
	return uc.categories.List(ctx)
}

// SaveCategory crea (id=0) o actualiza una categoría.
func (uc *CatalogUseCase) SaveCategory(ctx context.Context, id int64, in dto.CategoryRequest) error {
	if id == 0 {
		return uc.categories.Create(ctx, in)
	}
	return uc.categories.Update(ctx, id, in)
}

// DeleteCategory elimina una categoría.
func (uc *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return uc.categories.Delete(ctx, id)
}

// Suppliers listado completo de proveedores.
func (uc *CatalogUseCase) Suppliers(ctx context.Context) ([]entity.Supplier, error) {
	return uc.suppliers.List(ctx)
}

// SaveSupplier crea (id=0) o actualiza un proveedor.
func (uc *CatalogUseCase) SaveSupplier(ctx context.Context, id int64, in dto.SupplierRequest) error {
	if id == 0 {
		return uc.suppliers.Create(ctx, in)
	}
	return uc.suppliers.Update(ctx, id, in)
}

// DeleteSupplier elimina un proveedor.
func (uc *CatalogUseCase) DeleteSupplier(ctx context.Context, id int64) error {
	return uc.suppliers.Delete(ctx, id)
}
