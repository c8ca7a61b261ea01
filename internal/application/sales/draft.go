package sales

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
)

// Campos editables de un renglón del borrador.
const (
	FieldProductID = "product_id"
	FieldQuantity  = "quantity"
)

// Line renglón del borrador: producto elegido (0 = sin elegir) y cantidad.
type Line struct {
	ProductID int64
	Quantity  int
}

// Draft venta en composición, todavía no persistida. El orden de inserción de
// los renglones es el orden de presentación. Invariante: siempre hay al menos
// un renglón; quitar el último lo deja intacto.
//
// El borrador no valida nada al editar: cantidades inválidas o productos sin
// elegir se aceptan y se difieren al submit, donde el backend responde 422.
type Draft struct {
	CustomerName string
	Notes        string
	Lines        []Line
}

// NewDraft borrador inicial: un renglón sin producto con cantidad 1.
func NewDraft() *Draft {
	return &Draft{Lines: []Line{{Quantity: 1}}}
}

// AddLine agrega un renglón vacío al final. Siempre tiene éxito.
func (d *Draft) AddLine() {
	d.Lines = append(d.Lines, Line{Quantity: 1})
}

// RemoveLine quita el renglón en index. Si es el único renglón, o el índice
// está fuera de rango, no hace nada: la vista ya oculta el control en esos
// casos, pero el invariante se defiende aquí también.
func (d *Draft) RemoveLine(index int) {
	if len(d.Lines) <= 1 || index < 0 || index >= len(d.Lines) {
		return
	}
	d.Lines = append(d.Lines[:index], d.Lines[index+1:]...)
}

// UpdateLine reemplaza el campo indicado del renglón en index con el valor
// crudo del formulario. Valores no numéricos quedan en cero (contribución
// nula al total); los demás renglones no se tocan.
func (d *Draft) UpdateLine(index int, field, value string) {
	if index < 0 || index >= len(d.Lines) {
		return
	}
	switch field {
	case FieldProductID:
		id, _ := strconv.ParseInt(value, 10, 64)
		d.Lines[index].ProductID = id
	case FieldQuantity:
		q, _ := strconv.Atoi(value)
		d.Lines[index].Quantity = q
	}
}

// Total estimado del borrador contra el catálogo dado: suma price×quantity de
// cada renglón cuyo producto exista y tenga cantidad positiva, redondeada a
// dos decimales. Es una estimación orientativa: el total autoritativo lo fija
// el backend al persistir (precio o stock pueden cambiar entre medias).
// Función pura: no toca el borrador ni el catálogo.
func (d *Draft) Total(catalog []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, ln := range d.Lines {
		if ln.ProductID == 0 || ln.Quantity <= 0 {
			continue
		}
		for _, p := range catalog {
			if p.ID == ln.ProductID {
				qty := decimal.NewFromInt(int64(ln.Quantity))
				total = total.Add(p.Price.Mul(qty))
				break
			}
		}
	}
	return total.Round(2)
}

// LineSubtotal estimación de un renglón individual, para la vista.
func (d *Draft) LineSubtotal(index int, catalog []entity.Product) decimal.Decimal {
	if index < 0 || index >= len(d.Lines) {
		return decimal.Zero
	}
	one := Draft{Lines: []Line{d.Lines[index]}}
	return one.Total(catalog)
}

// Reset vuelve al estado inicial: campos vacíos y un renglón limpio.
func (d *Draft) Reset() {
	d.CustomerName = ""
	d.Notes = ""
	d.Lines = []Line{{Quantity: 1}}
}

// Clone copia profunda, para entregar instantáneas a la vista sin exponer el
// slice interno.
func (d *Draft) Clone() Draft {
	c := *d
	c.Lines = make([]Line, len(d.Lines))
	copy(c.Lines, d.Lines)
	return c
}
