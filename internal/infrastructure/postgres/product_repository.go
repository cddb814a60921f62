package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
// price es NUMERIC y se lee directo a decimal.NullDecimal gracias al codec registrado en NewPool.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y devuelve el id generado por BIGSERIAL.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (int64, error) {
	query := `INSERT INTO products (name, price, stock, image) VALUES ($1, $2, $3, $4) RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query, product.Name, product.Price, product.Stock, product.Image).Scan(&id)
	if err != nil {
		return 0, domain.NewStorageError("insert product", err)
	}
	product.ID = id
	return id, nil
}

// GetByID obtiene un producto por ID; nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, `SELECT id, name, price, stock, image FROM products WHERE id = $1`, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Stock, &p.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get product", err)
	}
	return &p, nil
}

// List devuelve todos los productos ordenados por id.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, price, stock, image FROM products ORDER BY id`)
	if err != nil {
		return nil, domain.NewStorageError("list products", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Image); err != nil {
			return nil, domain.NewStorageError("scan product", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list products", err)
	}
	return list, nil
}

// Update reemplaza todos los campos. Devuelve filas afectadas (0 si no existe).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) (int64, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE products SET name = $2, price = $3, stock = $4, image = $5 WHERE id = $1`,
		product.ID, product.Name, product.Price, product.Stock, product.Image,
	)
	if err != nil {
		return 0, domain.NewStorageError("update product", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina un producto por ID. Devuelve filas afectadas (0 si no existe).
func (r *ProductRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return 0, domain.NewStorageError("delete product", err)
	}
	return tag.RowsAffected(), nil
}
