package usecase

import (
	"context"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/ports"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
)

// StockUseCase movimientos de stock: listado filtrado por tipo y registro.
type StockUseCase struct {
	api ports.StockAPI
}

// NewStockUseCase construye el caso de uso de stock.
func NewStockUseCase(api ports.StockAPI) *StockUseCase {
	return &StockUseCase{api: api}
}

// Movements movimientos, opcionalmente filtrados por entrada|salida|ajuste.
func (uc *StockUseCase) Movements(ctx context.Context, movType string) ([]entity.StockMovement, error) {
	return uc.api.List(ctx, movType)
}

// Register registra un movimiento. El stock resultante (before/after) lo
// calcula el backend y vuelve en la respuesta.
func (uc *StockUseCase) Register(ctx context.Context, in dto.MovementRequest) (*entity.StockMovement, error) {
	return uc.api.Create(ctx, in)
}
