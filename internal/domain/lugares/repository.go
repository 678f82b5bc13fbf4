package lugares

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("lugar not found")

// Repository es el port de storage del devserver para lugares.
// busca filtra por substring del nombre (case-insensitive); vacío lista todo.
type Repository interface {
	Create(ctx context.Context, l Lugar) (Lugar, error)
	GetByID(ctx context.Context, id int64) (Lugar, error)
	List(ctx context.Context, busca string) ([]Lugar, error)
}
