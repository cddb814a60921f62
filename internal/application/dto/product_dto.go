package dto

import "github.com/shopspring/decimal"

// ProductRequest entrada para crear o reemplazar un producto.
// Los campos ausentes o null se guardan como NULL; no hay validación de rangos.
type ProductRequest struct {
	Name  *string             `json:"name"`
	Price decimal.NullDecimal `json:"price" swaggertype:"number"`
	Stock *int64              `json:"stock"`
	Image *string             `json:"image"`
}

// ProductResponse salida de un producto (misma forma que la fila de la tabla).
type ProductResponse struct {
	ID    int64               `json:"id"`
	Name  *string             `json:"name"`
	Price decimal.NullDecimal `json:"price" swaggertype:"number"`
	Stock *int64              `json:"stock"`
	Image *string             `json:"image"`
}

// ProductListResponse listado completo de productos.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}
