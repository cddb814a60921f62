// Package embedded implementa el almacén relacional en proceso sobre stoolap
// (database/sql). Con el DSN por defecto, memory://, los datos viven solo
// mientras vive el proceso.
package embedded

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	// Registra el driver "stoolap" en database/sql.
	_ "github.com/stoolap/stoolap/pkg/driver"
)

const driverName = "stoolap"

// MemoryDSN almacén volátil, recreado en cada arranque.
const MemoryDSN = "memory://"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		first_name TEXT,
		last_name TEXT,
		ci TEXT,
		email TEXT,
		password TEXT
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
	`CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY,
		name TEXT,
		price FLOAT,
		stock INTEGER,
		image TEXT
	)`,
}

// DB instancia del almacén. Se construye una vez en main y se inyecta en los repositorios.
type DB struct {
	sql        *sql.DB
	userSeq    atomic.Int64
	productSeq atomic.Int64
}

// Open abre el almacén, crea el esquema y posiciona las secuencias de ids.
// El pool queda limitado a una conexión: las sentencias se ejecutan una tras otra.
func Open(ctx context.Context, dsn string) (*DB, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir stoolap: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	db := &DB{sql: sqlDB}
	if err := db.bootstrap(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) bootstrap(ctx context.Context) error {
	if err := db.sql.PingContext(ctx); err != nil {
		return fmt.Errorf("ping stoolap: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	// El driver comparte el motor entre conexiones con el mismo DSN y uno en disco
	// puede traer filas: las secuencias continúan desde el último id existente.
	for table, seq := range map[string]*atomic.Int64{"users": &db.userSeq, "products": &db.productSeq} {
		last, err := db.maxID(ctx, table)
		if err != nil {
			return err
		}
		seq.Store(last)
	}
	return nil
}

func (db *DB) maxID(ctx context.Context, table string) (int64, error) {
	var last sql.NullInt64
	err := db.sql.QueryRowContext(ctx, "SELECT MAX(id) FROM "+table).Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("max id %s: %w", table, err)
	}
	return last.Int64, nil
}

// Ping verifica que el almacén responde.
func (db *DB) Ping(ctx context.Context) error {
	return db.sql.PingContext(ctx)
}

// Close libera el almacén. En memoria, descarta todos los datos.
func (db *DB) Close() error {
	return db.sql.Close()
}
