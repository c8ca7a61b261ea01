// Package excel genera el libro de cálculo del reporte de inventario con
// excelize: hojas Resumen, Stock Bajo y Por Categoría.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/usecase"
)

var _ usecase.ReportWorkbookGenerator = (*ReportWorkbook)(nil)

// ReportWorkbook generador del XLSX del reporte.
type ReportWorkbook struct{}

// NewReportWorkbook construye el generador.
func NewReportWorkbook() *ReportWorkbook { return &ReportWorkbook{} }

// GenerateWorkbook arma el libro y devuelve sus bytes.
func (g *ReportWorkbook) GenerateWorkbook(data *usecase.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	s := data.Summary
	if err := writeSheet(f, "Resumen", [][]any{
		{"Métrica", "Valor"},
		{"Total Productos", s.TotalProducts},
		{"Categorías", s.TotalCategories},
		{"Proveedores", s.TotalSuppliers},
		{"Stock Bajo", s.LowStock},
		{"Valor Total", "$" + s.TotalValue.StringFixed(2)},
	}); err != nil {
		return nil, err
	}

	lowRows := [][]any{{"Producto", "SKU", "Categoría", "Stock Actual", "Stock Mínimo"}}
	for _, p := range data.LowStock {
		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}
		lowRows = append(lowRows, []any{p.Name, p.SKU, category, p.Stock, p.StockMin})
	}
	if err := writeSheet(f, "Stock Bajo", lowRows); err != nil {
		return nil, err
	}

	catRows := [][]any{{"Categoría", "Total Productos", "Stock Total"}}
	for _, c := range data.ByCategory {
		catRows = append(catRows, []any{c.Name, c.ProductsCount, c.StockSum})
	}
	if err := writeSheet(f, "Por Categoría", catRows); err != nil {
		return nil, err
	}

	// La hoja por defecto de excelize sobra una vez creadas las tres propias.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: quitar hoja por defecto: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, name string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("excel: crear hoja %s: %w", name, err)
	}
	for i, cells := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &cells); err != nil {
			return fmt.Errorf("excel: escribir fila %d de %s: %w", i+1, name, err)
		}
	}
	return nil
}
