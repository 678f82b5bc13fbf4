package api

import (
	"context"
	"errors"
)

// Paginador recorre un listado página por página siguiendo los cursors
// "proxima" que devuelve el backend.
type Paginador struct {
	recurso *Resource
	filtros Filtros
	opts    *Opcoes

	proxima *string
	inicio  bool
}

func (r *Resource) Paginar(filtros Filtros, opts *Opcoes) *Paginador {
	return &Paginador{
		recurso: r,
		filtros: filtros,
		opts:    opts,
		inicio:  true,
	}
}

// HasNext indica si queda una página por pedir.
func (p *Paginador) HasNext() bool {
	return p.inicio || p.proxima != nil
}

// Next trae la página siguiente. La primera llamada hace el List normal;
// las siguientes pegan directo al cursor (URL absoluta del backend).
func (p *Paginador) Next(ctx context.Context) (*Lista, error) {
	var (
		lista *Lista
		err   error
	)

	switch {
	case p.inicio:
		lista, err = p.recurso.List(ctx, p.filtros, p.opts)
	case p.proxima != nil:
		ef := p.recurso.resolve(p.opts)
		lista, err = listar(ctx, ef.service, *p.proxima)
	default:
		return nil, errors.New("api: no more pages")
	}

	if err != nil {
		return nil, err
	}

	p.inicio = false
	p.proxima = lista.Proxima
	return lista, nil
}
