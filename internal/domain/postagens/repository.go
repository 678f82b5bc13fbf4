package postagens

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("postagem not found")

// Repository es el port de storage del devserver para el blog.
type Repository interface {
	Create(ctx context.Context, p Postagem) (Postagem, error)
	GetByID(ctx context.Context, id int64) (Postagem, error)
	List(ctx context.Context) ([]Postagem, error)
}
