package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product instantánea de solo lectura de un producto del inventario.
// Price y Stock son los valores vigentes al momento de la consulta; el total
// autoritativo de una venta lo calcula el backend al persistir.
type Product struct {
	ID         int64           `json:"id"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	StockMin   int             `json:"stock_min"`
	CategoryID int64           `json:"category_id"`
	SupplierID int64           `json:"supplier_id"`
	Category   *Category       `json:"category,omitempty"`
	Supplier   *Supplier       `json:"supplier,omitempty"`
	CreatedAt  time.Time       `json:"created_at,omitempty"`
	UpdatedAt  time.Time       `json:"updated_at,omitempty"`
}

// LowStock indica si el producto está por debajo de su stock mínimo.
func (p Product) LowStock() bool {
	return p.Stock <= p.StockMin
}
