package credentials

import (
	"context"
	"errors"

	"sarc-client/internal/platform/httpclient"
)

// Claves bajo las que se persiste la sesión. Son las mismas que usaba el
// app móvil, para poder compartir el storage con instalaciones viejas.
const (
	KeyToken     = "jwt"
	KeyUserID    = "userId"
	KeyUserEmail = "userEmail"
)

var ErrNotFound = errors.New("credential not found")

// Store es el port de almacenamiento clave-valor local de credenciales.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// TokenSource adapta un Store como capability de token para el transporte.
// Token ausente => "" (request sin Authorization), no es error.
func TokenSource(store Store) httpclient.TokenSource {
	return func(ctx context.Context) (string, error) {
		v, err := store.Get(ctx, KeyToken)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return "", nil
			}
			return "", err
		}
		return v, nil
	}
}
