package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// InventoryReportLine una fila del reporte. Value = Price * Stock (0 si falta alguno).
type InventoryReportLine struct {
	ID    int64
	Name  string
	Price decimal.Decimal
	Stock int64
	Value decimal.Decimal
}

// InventoryReport reporte de existencias valorizado.
type InventoryReport struct {
	Title       string
	GeneratedAt time.Time
	Lines       []InventoryReportLine
	TotalUnits  int64
	TotalValue  decimal.Decimal
}

// InventoryPDFGenerator puerto de salida para renderizar el reporte.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, report *InventoryReport) ([]byte, error)
}

// InventoryReportUseCase arma el reporte de inventario a partir del listado de productos.
type InventoryReportUseCase struct {
	repo      repository.ProductRepository
	generator InventoryPDFGenerator
	title     string
	now       func() time.Time
}

// NewInventoryReportUseCase construye el caso de uso.
func NewInventoryReportUseCase(repo repository.ProductRepository, generator InventoryPDFGenerator, title string) *InventoryReportUseCase {
	return &InventoryReportUseCase{repo: repo, generator: generator, title: title, now: time.Now}
}

// Build calcula el reporte sin renderizarlo.
func (uc *InventoryReportUseCase) Build(ctx context.Context) (*InventoryReport, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	report := &InventoryReport{
		Title:       uc.title,
		GeneratedAt: uc.now(),
		Lines:       make([]InventoryReportLine, 0, len(list)),
		TotalValue:  decimal.Zero,
	}
	for _, p := range list {
		line := InventoryReportLine{ID: p.ID, Price: decimal.Zero, Value: decimal.Zero}
		if p.Name != nil {
			line.Name = *p.Name
		}
		if p.Price.Valid {
			line.Price = p.Price.Decimal
		}
		if p.Stock != nil {
			line.Stock = *p.Stock
		}
		if p.Price.Valid && p.Stock != nil {
			line.Value = p.Price.Decimal.Mul(decimal.NewFromInt(*p.Stock))
		}
		report.TotalUnits += line.Stock
		report.TotalValue = report.TotalValue.Add(line.Value)
		report.Lines = append(report.Lines, line)
	}
	return report, nil
}

// PDF genera el reporte y lo renderiza.
func (uc *InventoryReportUseCase) PDF(ctx context.Context) ([]byte, error) {
	report, err := uc.Build(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := uc.generator.GenerateInventoryPDF(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("reporte de inventario: %w", err)
	}
	return doc, nil
}
