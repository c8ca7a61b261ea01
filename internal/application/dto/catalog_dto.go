package dto

// ProductRequest alta/edición de un producto. Price viaja como texto tal cual
// lo tecleó el usuario; el backend valida y normaliza.
type ProductRequest struct {
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Stock      string `json:"stock"`
	StockMin   string `json:"stock_min"`
	CategoryID string `json:"category_id"`
	SupplierID string `json:"supplier_id"`
}

// CategoryRequest alta/edición de una categoría.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SupplierRequest alta/edición de un proveedor.
type SupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact_name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UserRequest alta/edición de un usuario del sistema. Password vacío en
// edición significa "no cambiar".
type UserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

// MovementRequest registro de un movimiento de stock. Para type=ajuste,
// Quantity es el stock absoluto nuevo; el backend calcula before/after.
type MovementRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
	Quantity  string `json:"quantity"`
	Reason    string `json:"reason"`
}
