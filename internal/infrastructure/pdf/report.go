package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/usecase"
)

var _ usecase.ReportPDFGenerator = (*ReportGenerator)(nil)

// ReportGenerator reporte de inventario con Maroto v2: resumen global,
// productos con stock bajo y productos por categoría.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// GenerateReport genera el reporte completo y devuelve sus bytes.
func (g *ReportGenerator) GenerateReport(data *usecase.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(14).WithRightMargin(14).
		WithTopMargin(14).WithBottomMargin(14).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(12).Add(col.New(12).Add(
		text.New("Reporte de Inventario", props.Text{Style: fontstyle.Bold, Size: 16, Color: colorPrimary}),
	)))
	m.AddRows(summaryRows(data)...)

	m.AddRows(sectionTitle("Productos con Stock Bajo"))
	m.AddRows(tableHeader("Producto", "SKU", "Categoría", "Stock Actual", "Stock Mínimo"))
	for _, p := range data.LowStock {
		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}
		m.AddRows(tableRow(p.Name, p.SKU, category,
			fmt.Sprintf("%d", p.Stock), fmt.Sprintf("%d", p.StockMin)))
	}

	m.AddRows(sectionTitle("Productos por Categoría"))
	m.AddRows(tableHeader("Categoría", "Total Productos", "Stock Total", "", ""))
	for _, c := range data.ByCategory {
		m.AddRows(tableRow(c.Name, fmt.Sprintf("%d", c.ProductsCount),
			fmt.Sprintf("%d", c.StockSum), "", ""))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func summaryRows(data *usecase.ReportData) []core.Row {
	s := data.Summary
	lines := []string{
		fmt.Sprintf("Total Productos: %d", s.TotalProducts),
		fmt.Sprintf("Categorías: %d", s.TotalCategories),
		fmt.Sprintf("Proveedores: %d", s.TotalSuppliers),
		fmt.Sprintf("Stock Bajo: %d", s.LowStock),
		"Valor Total: $" + s.TotalValue.StringFixed(2),
	}
	rows := make([]core.Row, 0, len(lines))
	for _, ln := range lines {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(ln, props.Text{Size: 10}),
		)))
	}
	return rows
}

func sectionTitle(title string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 12, Top: 4}),
	))
}

func tableHeader(cells ...string) core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	cols := make([]core.Col, 0, len(cells))
	for _, cell := range cells {
		cols = append(cols, col.New(12/len(cells)).Add(text.New(cell, header)))
	}
	return row.New(7).Add(cols...)
}

func tableRow(cells ...string) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, cell := range cells {
		cols = append(cols, col.New(12/len(cells)).Add(text.New(cell, props.Text{Size: 9})))
	}
	return row.New(6).Add(cols...)
}
