package devserver

import (
	"errors"
	"time"

	"sarc-client/internal/domain/usuarios"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "sarc-api"
	tokenAudience = "sarc-mobile"
	tokenTTL      = 24 * time.Hour
)

var errInvalidToken = errors.New("invalid token")

// issueToken emite el access token con los claims de usuario que el
// backend real embebe. sub viaja numérico.
func (s *server) issueToken(c usuarios.Conta) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"sub": c.ID,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),

		"user_username":  c.Username,
		"user_email":     c.Email,
		"user_name":      c.Nome,
		"user_last_name": c.Sobrenome,
		"user_full_name": c.NomeCompleto,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// verifyToken valida firma, issuer y audience, y devuelve el user id.
func (s *server) verifyToken(token string) (int64, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
	).ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, errInvalidToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, errInvalidToken
	}
	return int64(sub), nil
}
