package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los fallos se devuelven como *domain.StorageError.
type UserRepository interface {
	// Create inserta el usuario y devuelve el id asignado por el almacén.
	Create(ctx context.Context, user *entity.User) (int64, error)
	// FindByEmail devuelve nil, nil si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
