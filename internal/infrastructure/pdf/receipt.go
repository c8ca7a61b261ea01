// Package pdf genera los documentos imprimibles del panel con Maroto v2:
// el recibo de venta y el reporte de inventario.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/sales"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ sales.ReceiptGenerator = (*ReceiptGenerator)(nil)

// ReceiptGenerator recibo de venta con Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// GenerateReceipt genera el recibo de una venta persistida y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateReceipt(sale *entity.Sale) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(14).WithRightMargin(14).
		WithTopMargin(14).WithBottomMargin(14).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(fmt.Sprintf("Recibo de Venta #%d", sale.ID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(12).Add(col.New(12).Add(
		text.New("Recibo de Venta", props.Text{Style: fontstyle.Bold, Size: 18, Color: colorPrimary}),
	)))
	m.AddRows(infoRows(sale)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(itemsHeaderRow())
	for _, item := range sale.Items {
		m.AddRows(itemRow(item))
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

func infoRows(sale *entity.Sale) []core.Row {
	seller := ""
	if sale.User != nil {
		seller = sale.User.Name
	}
	lines := []string{
		fmt.Sprintf("Venta #%d", sale.ID),
		"Cliente: " + sale.CustomerLabel(),
		"Vendedor: " + seller,
		"Fecha: " + sale.CreatedAt.Format("02/01/2006"),
		"Estado: " + sale.Status,
	}
	if sale.Notes != "" {
		lines = append(lines, "Notas: "+sale.Notes)
	}

	rows := make([]core.Row, 0, len(lines))
	for _, ln := range lines {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(ln, props.Text{Size: 10}),
		)))
	}
	return rows
}

func itemsHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary}
	return row.New(8).Add(
		col.New(6).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Precio Unit.", header)),
		col.New(2).Add(text.New("Cantidad", header)),
		col.New(2).Add(text.New("Subtotal", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Align: align.Right,
		})),
	)
}

func itemRow(item entity.SaleItem) core.Row {
	name := fmt.Sprintf("Producto %d", item.ProductID)
	if item.Product != nil {
		name = item.Product.Name
	}
	return row.New(6).Add(
		col.New(6).Add(text.New(name, props.Text{Size: 9})),
		col.New(2).Add(text.New("$"+item.Price.StringFixed(2), props.Text{Size: 9})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9})),
		col.New(2).Add(text.New("$"+item.Subtotal.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
	)
}

func totalRow(sale *entity.Sale) core.Row {
	return row.New(8).Add(
		col.New(10).Add(text.New("Total:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
		})),
		col.New(2).Add(text.New("$"+sale.Total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary,
		})),
	)
}
