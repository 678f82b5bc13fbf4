package amizades

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("amizade not found")

// Repository es el port de storage del devserver para amistades.
type Repository interface {
	Create(ctx context.Context, a AmizadeUsuario) (AmizadeUsuario, error)
	GetByID(ctx context.Context, id int64) (AmizadeUsuario, error)
	ListByUsuario(ctx context.Context, usuarioID int64, pendientes bool) ([]AmizadeUsuario, error)
	Update(ctx context.Context, a AmizadeUsuario) error
	Delete(ctx context.Context, id int64) error
}
