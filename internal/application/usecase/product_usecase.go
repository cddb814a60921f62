package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// ProductUseCase casos de uso CRUD para productos.
// Update y Delete no comprueban existencia: un id inexistente afecta 0 filas y no es error,
// salvo con strictNotFound, donde se devuelve domain.ErrNotFound.
type ProductUseCase struct {
	repo           repository.ProductRepository
	strictNotFound bool
	log            *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, strictNotFound bool, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, strictNotFound: strictNotFound, log: log.Component("products")}
}

// Create crea un producto y devuelve el id asignado.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (int64, error) {
	id, err := uc.repo.Create(ctx, toProduct(0, in))
	if err != nil {
		uc.log.Error().Err(err).Msg("crear producto")
		return 0, err
	}
	return id, nil
}

// List devuelve todos los productos ordenados por id.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("listar productos")
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{Products: items}, nil
}

// GetByID obtiene un producto. Devuelve nil, nil si no existe o el id no es numérico.
func (uc *ProductUseCase) GetByID(ctx context.Context, rawID string) (*dto.ProductResponse, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, nil
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Int64("product_id", id).Msg("obtener producto")
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	out := toProductResponse(p)
	return &out, nil
}

// Update reemplaza todos los campos del producto y devuelve las filas afectadas.
// Un id no numérico no coincide con ninguna fila.
func (uc *ProductUseCase) Update(ctx context.Context, rawID string, in dto.ProductRequest) (int64, error) {
	id, ok := parseID(rawID)
	if !ok {
		return uc.affected(0)
	}
	n, err := uc.repo.Update(ctx, toProduct(id, in))
	if err != nil {
		uc.log.Error().Err(err).Int64("product_id", id).Msg("actualizar producto")
		return 0, err
	}
	return uc.affected(n)
}

// Delete elimina un producto por ID y devuelve las filas afectadas.
func (uc *ProductUseCase) Delete(ctx context.Context, rawID string) (int64, error) {
	id, ok := parseID(rawID)
	if !ok {
		return uc.affected(0)
	}
	n, err := uc.repo.Delete(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Int64("product_id", id).Msg("eliminar producto")
		return 0, err
	}
	return uc.affected(n)
}

func (uc *ProductUseCase) affected(n int64) (int64, error) {
	if n == 0 && uc.strictNotFound {
		return 0, domain.ErrNotFound
	}
	return n, nil
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func toProduct(id int64, in dto.ProductRequest) *entity.Product {
	return &entity.Product{
		ID:    id,
		Name:  in.Name,
		Price: in.Price,
		Stock: in.Stock,
		Image: in.Image,
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
		Image: p.Image,
	}
}
