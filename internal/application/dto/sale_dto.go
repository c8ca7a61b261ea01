package dto

// SaleItemRequest renglón del borrador tal como lo espera POST /sales.
// La cantidad viaja tal cual la dejó el usuario: la validación (entero
// positivo, stock suficiente) es del backend.
type SaleItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CreateSaleRequest cuerpo de POST /sales: el borrador completo en una sola
// petición atómica.
type CreateSaleRequest struct {
	CustomerName string            `json:"customer_name"`
	Notes        string            `json:"notes"`
	Items        []SaleItemRequest `json:"items"`
}
