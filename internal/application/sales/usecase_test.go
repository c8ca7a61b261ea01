package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/sales"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
	"github.com/Alexander08S-C/inventario-frontend/pkg/logger"
)

// fakeSaleAPI implementación en memoria del puerto de ventas.
type fakeSaleAPI struct {
	createErr error
	cancelErr error
	created   []dto.CreateSaleRequest
	cancelled []int64
}

func (f *fakeSaleAPI) List(ctx context.Context) ([]entity.Sale, error) { return nil, nil }
func (f *fakeSaleAPI) Get(ctx context.Context, id int64) (*entity.Sale, error) {
	return &entity.Sale{ID: id}, nil
}
func (f *fakeSaleAPI) Create(ctx context.Context, req dto.CreateSaleRequest) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, req)
	return nil
}
func (f *fakeSaleAPI) Cancel(ctx context.Context, id int64) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

func nuevoCasoDeUso(api *fakeSaleAPI) *sales.UseCase {
	return sales.NewUseCase(api, nil, logger.Nop())
}

func TestSubmit_Exitoso_ReiniciaElBorrador(t *testing.T) {
	api := &fakeSaleAPI{}
	uc := nuevoCasoDeUso(api)
	uc.SetHeader("María", "efectivo")
	uc.UpdateLine(0, sales.FieldProductID, "7")
	uc.UpdateLine(0, sales.FieldQuantity, "2")

	err := uc.Submit(context.Background())

	require.NoError(t, err)
	require.Len(t, api.created, 1)
	assert.Equal(t, "María", api.created[0].CustomerName)
	require.Len(t, api.created[0].Items, 1)
	assert.Equal(t, int64(7), api.created[0].Items[0].ProductID)

	d := uc.Draft()
	assert.Empty(t, d.CustomerName, "el éxito reinicia el borrador")
	require.Len(t, d.Lines, 1)
	assert.Equal(t, sales.Line{Quantity: 1}, d.Lines[0])
}

func TestSubmit_Rechazado_ConservaElBorrador(t *testing.T) {
	api := &fakeSaleAPI{createErr: &domain.ValidationError{
		Message: "Stock insuficiente",
		Errors:  map[string][]string{"items.0.quantity": {"Stock insuficiente"}},
	}}
	uc := nuevoCasoDeUso(api)
	uc.SetHeader("María", "")
	uc.UpdateLine(0, sales.FieldProductID, "7")
	uc.UpdateLine(0, sales.FieldQuantity, "99")

	err := uc.Submit(context.Background())

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)

	d := uc.Draft()
	assert.Equal(t, "María", d.CustomerName, "un rechazo deja el borrador intacto")
	assert.Equal(t, int64(7), d.Lines[0].ProductID)
	assert.Equal(t, 99, d.Lines[0].Quantity)
}

func TestSubmit_EnviaTodosLosRenglones(t *testing.T) {
	api := &fakeSaleAPI{}
	uc := nuevoCasoDeUso(api)
	uc.UpdateLine(0, sales.FieldProductID, "1")
	uc.AddLine()
	uc.UpdateLine(1, sales.FieldProductID, "2")
	uc.UpdateLine(1, sales.FieldQuantity, "3")

	require.NoError(t, uc.Submit(context.Background()))

	require.Len(t, api.created, 1)
	assert.Len(t, api.created[0].Items, 2, "el borrador viaja completo en una sola petición")
}

func TestCancelDraft_NoTocaLaRed(t *testing.T) {
	api := &fakeSaleAPI{}
	uc := nuevoCasoDeUso(api)
	uc.SetHeader("María", "nota")
	uc.AddLine()

	uc.CancelDraft()

	assert.Empty(t, api.created)
	assert.Empty(t, api.cancelled)
	d := uc.Draft()
	assert.Empty(t, d.CustomerName)
	assert.Len(t, d.Lines, 1)
}

func TestCancelSale_PropagaElMensajeDelBackend(t *testing.T) {
	api := &fakeSaleAPI{cancelErr: &domain.APIError{Status: 400, Message: "Esta venta ya está cancelada"}}
	uc := nuevoCasoDeUso(api)

	err := uc.CancelSale(context.Background(), 5)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Esta venta ya está cancelada", apiErr.Message, "el mensaje del backend se conserva textual")
}

func TestCancelSale_Exitoso(t *testing.T) {
	api := &fakeSaleAPI{}
	uc := nuevoCasoDeUso(api)

	require.NoError(t, uc.CancelSale(context.Background(), 5))
	assert.Equal(t, []int64{5}, api.cancelled)
}

func TestSubmit_ErrorDeTransporte_NoReinicia(t *testing.T) {
	api := &fakeSaleAPI{createErr: errors.New("conexión rechazada")}
	uc := nuevoCasoDeUso(api)
	uc.SetHeader("Pedro", "")

	err := uc.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Pedro", uc.Draft().CustomerName)
}
