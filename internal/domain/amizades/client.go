package amizades

import (
	"context"
	"encoding/json"

	"sarc-client/internal/api"
	"sarc-client/internal/platform/httpclient"
)

// Service es el cliente tipado de "amizades_usuarios": listado de amigos,
// pedidos pendientes y las transiciones aceitar/recusar.
type Service struct {
	recurso *api.Resource
}

func NewService(service *httpclient.Client) *Service {
	return &Service{
		recurso: api.NewResource(service, "amizades_usuarios"),
	}
}

// List trae las amistades de un usuario. pendientes=true filtra los
// pedidos todavía no aceptados.
func (s *Service) List(ctx context.Context, usuarioID int64, pendientes bool) ([]AmizadeUsuario, error) {
	filtros := api.Filtros{}.Add("usuario", usuarioID)
	if pendientes {
		filtros = filtros.Add("ativo", false)
	}

	lista, err := s.recurso.List(ctx, filtros, nil)
	if err != nil {
		return nil, err
	}
	out := make([]AmizadeUsuario, 0, len(lista.Resultados))
	for _, raw := range lista.Resultados {
		var a AmizadeUsuario
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Convidar manda un pedido de amistad.
func (s *Service) Convidar(ctx context.Context, usuarioID, amigoID int64) (AmizadeUsuario, error) {
	reg, err := s.recurso.Create(ctx, map[string]any{
		"usuario": usuarioID,
		"amigo":   amigoID,
	}, nil)
	if err != nil {
		return AmizadeUsuario{}, err
	}
	var a AmizadeUsuario
	if err := reg.Decode(&a); err != nil {
		return AmizadeUsuario{}, err
	}
	return a, nil
}

// Aceitar acepta un pedido pendiente. Es una transición de estado, no un
// replace real: viaja como PUT con la acción "aceitar".
func (s *Service) Aceitar(ctx context.Context, id int64) error {
	_, err := s.recurso.Replace(ctx, id, nil, &api.Opcoes{ActionEndpoint: "aceitar"})
	return err
}

// Recusar rechaza un pedido pendiente.
func (s *Service) Recusar(ctx context.Context, id int64) error {
	_, err := s.recurso.Replace(ctx, id, nil, &api.Opcoes{ActionEndpoint: "recusar"})
	return err
}
