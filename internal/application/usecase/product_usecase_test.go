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
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

func ptr[T any](v T) *T { return &v }

func widget() dto.ProductRequest {
	return dto.ProductRequest{
		Name:  ptr("Widget"),
		Price: decimal.NewNullDecimal(decimal.RequireFromString("9.99")),
		Stock: ptr(int64(5)),
		Image: ptr("w.png"),
	}
}

func TestProductUseCase_CreateYList(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), false, logger.Nop())
	ctx := context.Background()

	id, err := uc.Create(ctx, widget())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	out, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, out.Products, 1)
	p := out.Products[0]
	assert.Equal(t, id, p.ID)
	assert.Equal(t, "Widget", *p.Name)
	assert.True(t, p.Price.Decimal.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, int64(5), *p.Stock)
	assert.Equal(t, "w.png", *p.Image)
}

func TestProductUseCase_ListVacioNoEsNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), false, logger.Nop())

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out.Products)
	assert.Empty(t, out.Products)
}

func TestProductUseCase_UpdateReemplazaTodosLosCampos(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), false, logger.Nop())
	ctx := context.Background()
	id, err := uc.Create(ctx, widget())
	require.NoError(t, err)

	n, err := uc.Update(ctx, "1", dto.ProductRequest{Name: ptr("Gadget")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	p, err := uc.GetByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, "Gadget", *p.Name)
	assert.False(t, p.Price.Valid, "reemplazo completo: price ausente queda NULL")
	assert.Nil(t, p.Stock)
	assert.Nil(t, p.Image)
}

func TestProductUseCase_IdInexistenteEsNoOp(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), false, logger.Nop())
	ctx := context.Background()

	n, err := uc.Update(ctx, "99", widget())
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = uc.Delete(ctx, "99")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = uc.Delete(ctx, "abc")
	require.NoError(t, err)
	assert.Zero(t, n, "un id no numérico no coincide con ninguna fila")
}

func TestProductUseCase_StrictNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), true, logger.Nop())
	ctx := context.Background()

	_, err := uc.Update(ctx, "99", widget())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Delete(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(ctx, widget())
	require.NoError(t, err)
	n, err := uc.Delete(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestProductUseCase_GetByIDInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), false, logger.Nop())

	p, err := uc.GetByID(context.Background(), "7")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = uc.GetByID(context.Background(), "siete")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductUseCase_PropagaStorageError(t *testing.T) {
	repo := newFakeProductRepo()
	repo.err = errors.New("database is closed")
	uc := usecase.NewProductUseCase(repo, false, logger.Nop())

	_, err := uc.List(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsStorageError(err))

	_, err = uc.Delete(context.Background(), "1")
	assert.True(t, domain.IsStorageError(err))
}
