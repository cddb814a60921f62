package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int // 0 = sin expiración
	Issuer     string
}

// Credentials hashea/verifica passwords con bcrypt y emite tokens firmados.
type Credentials struct {
	cost   int
	jwtCfg JWTConfig
}

// NewCredentials construye el servicio. Un cost fuera de rango cae en bcrypt.DefaultCost.
func NewCredentials(cost int, jwtCfg JWTConfig) *Credentials {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Credentials{cost: cost, jwtCfg: jwtCfg}
}

// Hash devuelve el digest bcrypt (con sal embebida) del password.
func (c *Credentials) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), c.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password supera 72 bytes", domain.ErrInvalidInput)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify indica si plaintext corresponde al digest bajo su sal.
func (c *Credentials) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// IssueToken firma un token con el email como claim. No hay almacén de revocación.
func (c *Credentials) IssueToken(email string) (string, error) {
	return jwt.Generate(c.jwtCfg.Secret, email, c.jwtCfg.Issuer, c.jwtCfg.ExpMinutes)
}

// ParseToken valida un token emitido por IssueToken y devuelve su email.
func (c *Credentials) ParseToken(token string) (string, error) {
	return jwt.Parse(c.jwtCfg.Secret, token)
}
