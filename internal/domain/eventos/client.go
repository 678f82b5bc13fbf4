package eventos

import (
	"context"
	"encoding/json"

	"sarc-client/internal/api"
	"sarc-client/internal/platform/httpclient"
)

// Service es el cliente tipado de "eventos" e "inscricoes_evento".
type Service struct {
	recurso    *api.Resource
	inscricoes *api.Resource
}

func NewService(service *httpclient.Client) *Service {
	return &Service{
		recurso:    api.NewResource(service, "eventos"),
		inscricoes: api.NewResource(service, "inscricoes_evento"),
	}
}

// List trae los eventos visibles; filtros opcionales (data, lugar, publico).
func (s *Service) List(ctx context.Context, filtros api.Filtros) ([]Evento, error) {
	lista, err := s.recurso.List(ctx, filtros, nil)
	if err != nil {
		return nil, err
	}
	out := make([]Evento, 0, len(lista.Resultados))
	for _, raw := range lista.Resultados {
		var e Evento
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Retrieve trae el detalle de un evento.
func (s *Service) Retrieve(ctx context.Context, id int64) (Evento, error) {
	reg, err := s.recurso.Retrieve(ctx, id, nil)
	if err != nil {
		return Evento{}, err
	}
	var e Evento
	if err := reg.Decode(&e); err != nil {
		return Evento{}, err
	}
	return e, nil
}

// Create crea un evento nuevo.
func (s *Service) Create(ctx context.Context, in CreateInput) (Evento, error) {
	reg, err := s.recurso.Create(ctx, in, nil)
	if err != nil {
		return Evento{}, err
	}
	var e Evento
	if err := reg.Decode(&e); err != nil {
		return Evento{}, err
	}
	return e, nil
}

// Inscricoes lista las inscripciones de un usuario (su agenda).
func (s *Service) Inscricoes(ctx context.Context, usuarioID int64) ([]InscricaoEvento, error) {
	lista, err := s.inscricoes.List(ctx, api.Filtros{}.Add("usuario", usuarioID), nil)
	if err != nil {
		return nil, err
	}
	out := make([]InscricaoEvento, 0, len(lista.Resultados))
	for _, raw := range lista.Resultados {
		var i InscricaoEvento
		if err := json.Unmarshal(raw, &i); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

// Convidar invita un usuario a un evento vía la acción "convidar" de las
// inscripciones.
func (s *Service) Convidar(ctx context.Context, eventoID, usuarioID int64) error {
	_, err := s.inscricoes.Create(ctx, map[string]any{
		"evento":  eventoID,
		"usuario": usuarioID,
	}, &api.Opcoes{ActionEndpoint: "convidar"})
	return err
}
