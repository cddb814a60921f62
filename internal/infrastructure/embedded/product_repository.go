package embedded

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, price, stock, image`

// ProductRepo implementación del puerto ProductRepository sobre stoolap.
// price se guarda como FLOAT, igual que la columna REAL original.
type ProductRepo struct {
	db *DB
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un nuevo producto y devuelve el id asignado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (int64, error) {
	id := r.db.productSeq.Add(1)
	query := `INSERT INTO products (id, name, price, stock, image) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.sql.ExecContext(ctx, query,
		id, strArg(product.Name), priceArg(product.Price), intArg(product.Stock), strArg(product.Image),
	)
	if err != nil {
		return 0, domain.NewStorageError("insert product", err)
	}
	product.ID = id
	return id, nil
}

// GetByID obtiene un producto por ID; nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	row := r.db.sql.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get product", err)
	}
	return p, nil
}

// List devuelve todos los productos ordenados por id.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.db.sql.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, domain.NewStorageError("list products", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, domain.NewStorageError("scan product", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list products", err)
	}
	return list, nil
}

// Update reemplaza todos los campos del producto. Devuelve filas afectadas (0 si no existe).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) (int64, error) {
	query := `UPDATE products SET name = ?, price = ?, stock = ?, image = ? WHERE id = ?`
	res, err := r.db.sql.ExecContext(ctx, query,
		strArg(product.Name), priceArg(product.Price), intArg(product.Stock), strArg(product.Image), product.ID,
	)
	if err != nil {
		return 0, domain.NewStorageError("update product", err)
	}
	return rowsAffected(res)
}

// Delete elimina un producto por ID. Devuelve filas afectadas (0 si no existe).
func (r *ProductRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.sql.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return 0, domain.NewStorageError("delete product", err)
	}
	return rowsAffected(res)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*entity.Product, error) {
	var (
		p           entity.Product
		name, image sql.NullString
		price       sql.NullFloat64
		stock       sql.NullInt64
	)
	if err := s.Scan(&p.ID, &name, &price, &stock, &image); err != nil {
		return nil, err
	}
	if name.Valid {
		p.Name = &name.String
	}
	if price.Valid {
		p.Price = decimal.NewNullDecimal(decimal.NewFromFloat(price.Float64))
	}
	if stock.Valid {
		p.Stock = &stock.Int64
	}
	if image.Valid {
		p.Image = &image.String
	}
	return &p, nil
}

func priceArg(price decimal.NullDecimal) any {
	if !price.Valid {
		return nil
	}
	f, _ := price.Decimal.Float64()
	return f
}

func strArg(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func intArg(n *int64) any {
	if n == nil {
		return nil
	}
	return *n
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, domain.NewStorageError("rows affected", err)
	}
	return n, nil
}
