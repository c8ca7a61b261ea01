package sales

import "github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"

// ReceiptGenerator genera el recibo imprimible de una venta persistida.
type ReceiptGenerator interface {
	GenerateReceipt(sale *entity.Sale) ([]byte, error)
}
