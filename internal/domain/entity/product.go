package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario.
// Todos los campos salvo ID son opcionales: no se valida más allá del tipo, así que
// precio o stock negativos o ausentes se guardan tal cual (nil -> NULL).
type Product struct {
	ID    int64
	Name  *string
	Price decimal.NullDecimal
	Stock *int64
	Image *string // URL o nombre de archivo
}
