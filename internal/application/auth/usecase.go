package auth

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	creds    *Credentials
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, creds *Credentials, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, creds: creds, log: log.Component("auth")}
}

// RegisterUser hashea el password y persiste el usuario. El email duplicado no se
// comprueba antes: lo rechaza el índice único del almacén y llega como StorageError.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (int64, error) {
	hash, err := uc.creds.Hash(in.Password)
	if err != nil {
		return 0, err
	}
	user := &entity.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CI:           in.CI,
		Email:        in.Email,
		PasswordHash: hash,
	}
	id, err := uc.userRepo.Create(ctx, user)
	if err != nil {
		uc.log.Error().Err(err).Msg("registro de usuario")
		return 0, err
	}
	uc.log.Info().Int64("user_id", id).Msg("usuario registrado")
	return id, nil
}

// Login verifica email/password y genera el token. Los logs nunca llevan email ni password.
// Usuario inexistente o password incorrecto devuelven *domain.AuthError.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error().Err(err).Msg("login: buscar usuario")
		return nil, err
	}
	if user == nil {
		uc.log.Warn().Msg("login: usuario no encontrado")
		return nil, &domain.AuthError{Reason: "usuario no encontrado"}
	}
	if !uc.creds.Verify(in.Password, user.PasswordHash) {
		uc.log.Warn().Int64("user_id", user.ID).Msg("login: password incorrecto")
		return nil, &domain.AuthError{Reason: "password incorrecto"}
	}
	token, err := uc.creds.IssueToken(user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
