// Package sales implementa el flujo de ventas del panel: composición del
// borrador en memoria, registro atómico contra el backend, cancelación de
// ventas persistidas y recibo en PDF.
package sales

import (
	"context"
	"fmt"
	"sync"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/ports"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
	"github.com/Alexander08S-C/inventario-frontend/pkg/logger"
)

// UseCase dueño del borrador vigente (hay exactamente uno por proceso, igual
// que hay un solo formulario de venta en pantalla) y del protocolo
// submit/cancel contra el backend.
type UseCase struct {
	api      ports.SaleAPI
	receipts ReceiptGenerator
	log      *logger.Logger

	mu    sync.Mutex
	draft *Draft
}

// NewUseCase construye el caso de uso con un borrador limpio.
func NewUseCase(api ports.SaleAPI, receipts ReceiptGenerator, log *logger.Logger) *UseCase {
	return &UseCase{api: api, receipts: receipts, log: log, draft: NewDraft()}
}

// Draft instantánea del borrador vigente para renderizar.
func (uc *UseCase) Draft() Draft {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.draft.Clone()
}

// AddLine agrega un renglón vacío al borrador.
func (uc *UseCase) AddLine() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.draft.AddLine()
}

// RemoveLine quita un renglón del borrador (no-op si es el último).
func (uc *UseCase) RemoveLine(index int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.draft.RemoveLine(index)
}

// UpdateLine actualiza un campo de un renglón con el valor crudo del formulario.
func (uc *UseCase) UpdateLine(index int, field, value string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.draft.UpdateLine(index, field, value)
}

// SetHeader fija cliente y notas del borrador.
func (uc *UseCase) SetHeader(customerName, notes string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.draft.CustomerName = customerName
	uc.draft.Notes = notes
}

// CancelDraft descarta el borrador sin tocar la red.
func (uc *UseCase) CancelDraft() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.draft.Reset()
}

// Total estimación del borrador vigente contra el catálogo dado.
func (uc *UseCase) Total(catalog []entity.Product) string {
	d := uc.Draft()
	return d.Total(catalog).StringFixed(2)
}

// Submit envía el borrador completo como una sola petición. Si el backend lo
// rechaza (422, stock insuficiente, producto inválido) el borrador queda
// intacto para corregir y reintentar; solo un registro exitoso lo reinicia.
func (uc *UseCase) Submit(ctx context.Context) error {
	uc.mu.Lock()
	snapshot := uc.draft.Clone()
	uc.mu.Unlock()

	req := dto.CreateSaleRequest{
		CustomerName: snapshot.CustomerName,
		Notes:        snapshot.Notes,
		Items:        make([]dto.SaleItemRequest, 0, len(snapshot.Lines)),
	}
	for _, ln := range snapshot.Lines {
		req.Items = append(req.Items, dto.SaleItemRequest{ProductID: ln.ProductID, Quantity: ln.Quantity})
	}

	if err := uc.api.Create(ctx, req); err != nil {
		uc.log.Warn().Err(err).Msg("registro de venta rechazado")
		return err
	}

	uc.mu.Lock()
	uc.draft.Reset()
	uc.mu.Unlock()
	uc.log.Info().Int("items", len(req.Items)).Msg("venta registrada")
	return nil
}

// List ventas persistidas, en el orden que las entrega el backend.
func (uc *UseCase) List(ctx context.Context) ([]entity.Sale, error) {
	return uc.api.List(ctx)
}

// Get detalle de una venta (para el recibo).
func (uc *UseCase) Get(ctx context.Context, id int64) (*entity.Sale, error) {
	return uc.api.Get(ctx, id)
}

// CancelSale cancela una venta ya persistida (el backend restaura su stock).
// Distinto de CancelDraft: esto es una mutación remota y destructiva, la vista
// exige confirmación antes de llegar aquí. Un rechazo del backend (venta ya
// cancelada) se devuelve con su mensaje textual.
func (uc *UseCase) CancelSale(ctx context.Context, id int64) error {
	if err := uc.api.Cancel(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Int64("sale_id", id).Msg("venta cancelada")
	return nil
}

// Receipt genera el PDF del recibo de una venta.
func (uc *UseCase) Receipt(ctx context.Context, id int64) ([]byte, error) {
	sale, err := uc.api.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.receipts.GenerateReceipt(sale)
	if err != nil {
		return nil, fmt.Errorf("generar recibo de venta %d: %w", id, err)
	}
	return pdf, nil
}
