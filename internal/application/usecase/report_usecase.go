package usecase

import (
	"context"
	"fmt"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/ports"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
)

// ReportData los tres agregados que consume la página de reportes.
type ReportData struct {
	Summary    *entity.ReportSummary
	LowStock   []entity.Product
	ByCategory []entity.CategoryReport
}

// ReportPDFGenerator genera el reporte de inventario imprimible.
type ReportPDFGenerator interface {
	GenerateReport(data *ReportData) ([]byte, error)
}

// ReportWorkbookGenerator genera el libro de cálculo del reporte.
type ReportWorkbookGenerator interface {
	GenerateWorkbook(data *ReportData) ([]byte, error)
}

// ReportUseCase reportes de solo lectura y sus exportaciones.
type ReportUseCase struct {
	api      ports.ReportAPI
	pdf      ReportPDFGenerator
	workbook ReportWorkbookGenerator
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(api ports.ReportAPI, pdf ReportPDFGenerator, wb ReportWorkbookGenerator) *ReportUseCase {
	return &ReportUseCase{api: api, pdf: pdf, workbook: wb}
}

// Overview consulta los tres agregados. Falla completa si cualquiera falla:
// la página no tiene sentido a medias.
func (uc *ReportUseCase) Overview(ctx context.Context) (*ReportData, error) {
	summary, err := uc.api.Summary(ctx)
	if err != nil {
		return nil, err
	}
	low, err := uc.api.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	byCat, err := uc.api.ByCategory(ctx)
	if err != nil {
		return nil, err
	}
	return &ReportData{Summary: summary, LowStock: low, ByCategory: byCat}, nil
}

// ExportPDF reporte completo en PDF.
func (uc *ReportUseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	data, err := uc.Overview(ctx)
	if err != nil {
		return nil, err
	}
	out, err := uc.pdf.GenerateReport(data)
	if err != nil {
		return nil, fmt.Errorf("generar reporte PDF: %w", err)
	}
	return out, nil
}

// ExportExcel reporte completo en XLSX.
func (uc *ReportUseCase) ExportExcel(ctx context.Context) ([]byte, error) {
	data, err := uc.Overview(ctx)
	if err != nil {
		return nil, err
	}
	out, err := uc.workbook.GenerateWorkbook(data)
	if err != nil {
		return nil, fmt.Errorf("generar reporte XLSX: %w", err)
	}
	return out, nil
}
