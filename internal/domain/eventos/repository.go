package eventos

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("evento not found")

// Repository es el port de storage del devserver para eventos y sus
// inscripciones.
type Repository interface {
	Create(ctx context.Context, e Evento) (Evento, error)
	GetByID(ctx context.Context, id int64) (Evento, error)
	List(ctx context.Context) ([]Evento, error)

	CreateInscricao(ctx context.Context, i InscricaoEvento) (InscricaoEvento, error)
	ListInscricoes(ctx context.Context, usuarioID int64) ([]InscricaoEvento, error)
}
