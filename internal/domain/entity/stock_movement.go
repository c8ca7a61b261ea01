package entity

import "time"

// Tipos de movimiento de stock según el contrato del backend.
// entrada incrementa, salida decrementa, ajuste fija el stock en un valor absoluto.
const (
	MovementTypeIn     = "entrada"
	MovementTypeOut    = "salida"
	MovementTypeAdjust = "ajuste"
)

// MovementTypes tipos válidos en orden de presentación.
var MovementTypes = []string{MovementTypeIn, MovementTypeOut, MovementTypeAdjust}

// StockMovement movimiento de stock registrado. StockBefore/StockAfter los
// calcula y devuelve el backend; el panel nunca hace aritmética de stock.
type StockMovement struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	Product     *Product  `json:"product,omitempty"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason"`
	StockBefore int       `json:"stock_before"`
	StockAfter  int       `json:"stock_after"`
	User        *User     `json:"user,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
