package lugares

import (
	"context"
	"encoding/json"

	"sarc-client/internal/api"
	"sarc-client/internal/platform/httpclient"
)

// Service es el cliente tipado de "lugares" y sus colecciones satélite
// (categorías y reseñas).
type Service struct {
	recurso    *api.Resource
	categorias *api.Resource
	avaliacoes *api.Resource
}

func NewService(service *httpclient.Client) *Service {
	return &Service{
		recurso:    api.NewResource(service, "lugares"),
		categorias: api.NewResource(service, "categorias_lugar"),
		avaliacoes: api.NewResource(service, "avaliacoes_lugar"),
	}
}

// ListFilters son los filtros que soporta el listado de lugares.
type ListFilters struct {
	Busca     string
	Categoria int64
	Gratuito  *bool
}

func (f ListFilters) filtros() api.Filtros {
	var out api.Filtros
	if f.Busca != "" {
		out = out.Add("busca", f.Busca)
	}
	if f.Categoria != 0 {
		out = out.Add("categoria", f.Categoria)
	}
	if f.Gratuito != nil {
		out = out.Add("gratuito", *f.Gratuito)
	}
	return out
}

// List trae una página de lugares según los filtros.
func (s *Service) List(ctx context.Context, f ListFilters) ([]Lugar, error) {
	lista, err := s.recurso.List(ctx, f.filtros(), nil)
	if err != nil {
		return nil, err
	}
	return decodeLugares(lista.Resultados)
}

// Retrieve trae el detalle de un lugar.
func (s *Service) Retrieve(ctx context.Context, id int64) (Lugar, error) {
	reg, err := s.recurso.Retrieve(ctx, id, nil)
	if err != nil {
		return Lugar{}, err
	}
	var l Lugar
	if err := reg.Decode(&l); err != nil {
		return Lugar{}, err
	}
	return l, nil
}

// Categorias lista las categorías disponibles.
func (s *Service) Categorias(ctx context.Context) ([]CategoriaLugar, error) {
	lista, err := s.categorias.List(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	out := make([]CategoriaLugar, 0, len(lista.Resultados))
	for _, raw := range lista.Resultados {
		var c CategoriaLugar
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Avaliar crea una reseña sobre un lugar.
func (s *Service) Avaliar(ctx context.Context, a AvaliacaoLugar) (AvaliacaoLugar, error) {
	reg, err := s.avaliacoes.Create(ctx, a, nil)
	if err != nil {
		return AvaliacaoLugar{}, err
	}
	var out AvaliacaoLugar
	if err := reg.Decode(&out); err != nil {
		return AvaliacaoLugar{}, err
	}
	return out, nil
}

// Avaliacoes lista las reseñas de un lugar.
func (s *Service) Avaliacoes(ctx context.Context, lugarID int64) ([]AvaliacaoLugar, error) {
	lista, err := s.avaliacoes.List(ctx, api.Filtros{}.Add("lugar", lugarID), nil)
	if err != nil {
		return nil, err
	}
	out := make([]AvaliacaoLugar, 0, len(lista.Resultados))
	for _, raw := range lista.Resultados {
		var a AvaliacaoLugar
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func decodeLugares(raws []json.RawMessage) ([]Lugar, error) {
	out := make([]Lugar, 0, len(raws))
	for _, raw := range raws {
		var l Lugar
		if err := json.Unmarshal(raw, &l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}
