package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta persistida. El backend es la única autoridad sobre
// las transiciones (completada -> cancelada restaura stock).
const (
	SaleStatusCompleted = "completada"
	SaleStatusCancelled = "cancelada"
)

// Sale venta persistida por el backend, incluyendo el total autoritativo.
type Sale struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customer_name"`
	Notes        string          `json:"notes"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
	User         *User           `json:"user,omitempty"`
	Items        []SaleItem      `json:"items,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// SaleItem renglón de una venta persistida (precio y subtotal fijados por el backend).
type SaleItem struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Product   *Product        `json:"product,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Cancellable indica si la venta admite cancelación desde el panel.
func (s Sale) Cancellable() bool {
	return s.Status == SaleStatusCompleted
}

// CustomerLabel nombre a mostrar cuando la venta no registró cliente.
func (s Sale) CustomerLabel() string {
	if s.CustomerName == "" {
		return "Cliente general"
	}
	return s.CustomerName
}
