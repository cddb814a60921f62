package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

type captureGenerator struct {
	got *usecase.InventoryReport
	err error
}

func (g *captureGenerator) GenerateInventoryPDF(_ context.Context, r *usecase.InventoryReport) ([]byte, error) {
	g.got = r
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-fake"), nil
}

func TestInventoryReport_Totales(t *testing.T) {
	repo := newFakeProductRepo()
	products := usecase.NewProductUseCase(repo, false, logger.Nop())
	ctx := context.Background()

	_, err := products.Create(ctx, widget()) // 9.99 * 5
	require.NoError(t, err)
	_, err = products.Create(ctx, dto.ProductRequest{
		Name:  ptr("Tornillo"),
		Price: decimal.NewNullDecimal(decimal.RequireFromString("0.10")),
		Stock: ptr(int64(100)),
	})
	require.NoError(t, err)
	_, err = products.Create(ctx, dto.ProductRequest{Name: ptr("Sin precio"), Stock: ptr(int64(3))})
	require.NoError(t, err)

	gen := &captureGenerator{}
	uc := usecase.NewInventoryReportUseCase(repo, gen, "Inventario")

	doc, err := uc.PDF(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), doc)

	r := gen.got
	require.NotNil(t, r)
	require.Len(t, r.Lines, 3)
	assert.Equal(t, int64(108), r.TotalUnits)
	assert.True(t, r.TotalValue.Equal(decimal.RequireFromString("59.95")), "total=%s", r.TotalValue)
	assert.True(t, r.Lines[2].Value.IsZero(), "sin precio no suma valor")
	assert.Equal(t, "Inventario", r.Title)
}

func TestInventoryReport_FalloDelGenerador(t *testing.T) {
	gen := &captureGenerator{err: errors.New("fuente no encontrada")}
	uc := usecase.NewInventoryReportUseCase(newFakeProductRepo(), gen, "Inventario")

	_, err := uc.PDF(context.Background())
	assert.ErrorContains(t, err, "fuente no encontrada")
}
