package postgres

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         BIGSERIAL PRIMARY KEY,
		first_name TEXT,
		last_name  TEXT,
		ci         TEXT,
		email      TEXT UNIQUE,
		password   TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id    BIGSERIAL PRIMARY KEY,
		name  TEXT,
		price NUMERIC,
		stock BIGINT,
		image TEXT
	)`,
}

// EnsureSchema crea las tablas si no existen. No hay migraciones.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}
