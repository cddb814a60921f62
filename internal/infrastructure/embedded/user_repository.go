package embedded

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre stoolap.
type UserRepo struct {
	db *DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario. El email duplicado lo rechaza idx_users_email.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (int64, error) {
	id := r.db.userSeq.Add(1)
	query := `
		INSERT INTO users (id, first_name, last_name, ci, email, password)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.sql.ExecContext(ctx, query,
		id, user.FirstName, user.LastName, user.CI, user.Email, user.PasswordHash,
	)
	if err != nil {
		return 0, domain.NewStorageError("insert user", err)
	}
	user.ID = id
	return id, nil
}

// FindByEmail obtiene un usuario por email; nil, nil si no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, first_name, last_name, ci, email, password
		FROM users WHERE email = ?`
	var (
		u                     entity.User
		first, last, ci, hash sql.NullString
	)
	err := r.db.sql.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &first, &last, &ci, &u.Email, &hash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get user by email", err)
	}
	u.FirstName, u.LastName, u.CI, u.PasswordHash = first.String, last.String, ci.String, hash.String
	return &u, nil
}
