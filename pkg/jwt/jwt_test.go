package jwt_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/pkg/jwt"
)

const testSecret = "secretkey"

func payload(t *testing.T, token string) map[string]interface{} {
	t.Helper()
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestGenerate_PayloadSoloEmailEIat(t *testing.T) {
	tok, err := jwt.Generate(testSecret, "ana@example.com", "", 0)
	require.NoError(t, err)

	p := payload(t, tok)
	assert.Equal(t, "ana@example.com", p["email"])
	assert.Contains(t, p, "iat")
	assert.NotContains(t, p, "exp", "sin expMinutes no debe haber exp")
	assert.Len(t, p, 2)
}

func TestGenerate_ConExpiracion(t *testing.T) {
	tok, err := jwt.Generate(testSecret, "ana@example.com", "tienda-api", 5)
	require.NoError(t, err)

	p := payload(t, tok)
	assert.Contains(t, p, "exp")
	assert.Equal(t, "tienda-api", p["iss"])
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "ana@example.com", "", 0)
	assert.Error(t, err)
}

func TestParse_RoundTrip(t *testing.T) {
	tok, err := jwt.Generate(testSecret, "ana@example.com", "", 0)
	require.NoError(t, err)

	email, err := jwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate("otro-secret", "ana@example.com", "", 0)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	claims := jwt.Claims{
		Email: "ana@example.com",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestParse_Basura(t *testing.T) {
	_, err := jwt.Parse(testSecret, "no-es-un-token")
	assert.Error(t, err)
}
