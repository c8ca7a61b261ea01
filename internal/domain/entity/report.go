package entity

import "github.com/shopspring/decimal"

// ReportSummary agregados globales del inventario (GET /reports/summary).
type ReportSummary struct {
	TotalProducts   int             `json:"total_products"`
	TotalCategories int             `json:"total_categories"`
	TotalSuppliers  int             `json:"total_suppliers"`
	LowStock        int             `json:"low_stock"`
	TotalValue      decimal.Decimal `json:"total_value"`
}

// CategoryReport agregado por categoría (GET /reports/by-category).
type CategoryReport struct {
	Name          string `json:"name"`
	ProductsCount int    `json:"products_count"`
	StockSum      int    `json:"products_sum_stock"`
}
