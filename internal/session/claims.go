package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims son los datos de usuario que sarc-api embebe en el token.
type Claims struct {
	UserID       int64
	Username     string
	Email        string
	Nome         string
	Sobrenome    string
	NomeCompleto string
}

// ParseClaims decodifica el payload del JWT sin verificar la firma:
// el cliente no tiene el secreto, la verificación es del backend.
func ParseClaims(token string) (*Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("session: parse token: %w", err)
	}

	c := &Claims{
		Username:     asString(claims["user_username"]),
		Email:        asString(claims["user_email"]),
		Nome:         asString(claims["user_name"]),
		Sobrenome:    asString(claims["user_last_name"]),
		NomeCompleto: asString(claims["user_full_name"]),
	}

	// sub viene numérico en los tokens de sarc-api
	if v, ok := claims["sub"].(float64); ok {
		c.UserID = int64(v)
	}

	return c, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
