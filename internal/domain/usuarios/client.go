package usuarios

import (
	"context"

	"sarc-client/internal/api"
	"sarc-client/internal/platform/httpclient"
)

// Service es el cliente tipado de la colección "usuarios".
type Service struct {
	recurso *api.Resource
}

func NewService(service *httpclient.Client) *Service {
	return &Service{
		recurso: api.NewResource(service, "usuarios"),
	}
}

// Retrieve trae el perfil de un usuario por id.
func (s *Service) Retrieve(ctx context.Context, id int64) (Usuario, error) {
	reg, err := s.recurso.Retrieve(ctx, id, nil)
	if err != nil {
		return Usuario{}, err
	}
	var u Usuario
	if err := reg.Decode(&u); err != nil {
		return Usuario{}, err
	}
	return u, nil
}

// RetrieveByEmail busca el perfil por email (listado filtrado, primer
// resultado). Devuelve found=false si no hay match.
func (s *Service) RetrieveByEmail(ctx context.Context, email string) (Usuario, bool, error) {
	busca, err := s.recurso.RetrieveByFilters(ctx, api.Filtros{}.Add("email", email), nil)
	if err != nil {
		return Usuario{}, false, err
	}
	if len(busca.Registro) == 0 {
		return Usuario{}, false, nil
	}
	var u Usuario
	if err := busca.Decode(&u); err != nil {
		return Usuario{}, false, err
	}
	return u, true, nil
}

// Update edita campos del perfil (update parcial).
func (s *Service) Update(ctx context.Context, id int64, campos map[string]any) (Usuario, error) {
	reg, err := s.recurso.Update(ctx, id, campos, nil)
	if err != nil {
		return Usuario{}, err
	}
	var u Usuario
	if err := reg.Decode(&u); err != nil {
		return Usuario{}, err
	}
	return u, nil
}

// TotalPedidosAmizade trae el contador de pedidos de amistad pendientes.
// El backend lo expone como sub-colección de usuarios.
func (s *Service) TotalPedidosAmizade(ctx context.Context) (int, error) {
	lista, err := s.recurso.List(ctx, nil, &api.Opcoes{
		Endpoint: "usuarios/total_pedidos_amizade",
	})
	if err != nil {
		return 0, err
	}
	return lista.Total, nil
}
