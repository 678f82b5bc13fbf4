package usuarios

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("usuario not found")

// Conta es la fila de usuario que guarda el devserver: el perfil público
// más lo que nunca sale por el wire.
type Conta struct {
	Usuario
	SenhaHash   string
	CodigoReset string
}

// Repository es el port de storage del devserver para usuarios.
// El ID lo asigna el storage en Create.
type Repository interface {
	Create(ctx context.Context, c Conta) (Conta, error)
	GetByID(ctx context.Context, id int64) (Conta, error)
	GetByEmail(ctx context.Context, email string) (Conta, error)
	GetByUsername(ctx context.Context, username string) (Conta, error)
	Update(ctx context.Context, c Conta) error
	List(ctx context.Context) ([]Conta, error)
}
