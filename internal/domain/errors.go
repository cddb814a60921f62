package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
)

// StorageError envuelve cualquier fallo del almacén (incluidas violaciones de constraints).
// Error() devuelve el mensaje del driver tal cual, que es lo que ve el cliente.
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError construye un StorageError; devuelve nil si err es nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

// AuthError credenciales inválidas: usuario inexistente o password que no verifica.
// Reason solo se registra en logs; al cliente se le responde un mensaje fijo.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string { return "credenciales inválidas: " + e.Reason }

func (e *AuthError) Is(target error) bool { return target == ErrUnauthorized }

// IsStorageError indica si err (o alguna causa envuelta) es un StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
