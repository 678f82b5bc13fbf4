package postagens

import (
	"context"
	"encoding/json"

	"sarc-client/internal/api"
	"sarc-client/internal/platform/httpclient"
)

// Service es el cliente tipado del blog ("postagens").
type Service struct {
	recurso *api.Resource
}

func NewService(service *httpclient.Client) *Service {
	return &Service{
		recurso: api.NewResource(service, "postagens"),
	}
}

// List trae las entradas publicadas, más recientes primero (orden del
// backend).
func (s *Service) List(ctx context.Context, filtros api.Filtros) ([]Postagem, error) {
	lista, err := s.recurso.List(ctx, filtros, nil)
	if err != nil {
		return nil, err
	}
	out := make([]Postagem, 0, len(lista.Resultados))
	for _, raw := range lista.Resultados {
		var p Postagem
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Retrieve trae una entrada por id.
func (s *Service) Retrieve(ctx context.Context, id int64) (Postagem, error) {
	reg, err := s.recurso.Retrieve(ctx, id, nil)
	if err != nil {
		return Postagem{}, err
	}
	var p Postagem
	if err := reg.Decode(&p); err != nil {
		return Postagem{}, err
	}
	return p, nil
}
