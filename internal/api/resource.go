package api

import (
	"context"
	"fmt"
	"net/http"

	"sarc-client/internal/platform/httpclient"
)

// Resource expone las operaciones CRUD (y las acciones no-CRUD) sobre una
// colección del backend. El transporte viene inyectado en la construcción;
// no hay estado ambiente ni globals.
type Resource struct {
	service  *httpclient.Client
	endpoint string
	padrao   Opcoes
}

func NewResource(service *httpclient.Client, endpoint string) *Resource {
	return &Resource{
		service:  service,
		endpoint: endpoint,
	}
}

// WithDefaults devuelve una copia con opciones a nivel recurso
// (la precedencia intermedia entre el call y el global).
func (r *Resource) WithDefaults(padrao Opcoes) *Resource {
	c := *r
	c.padrao = padrao
	return &c
}

func (r *Resource) resolve(opts *Opcoes) efetivas {
	return resolver(opts, r.padrao, r.service, r.endpoint)
}

// List lista la colección: GET {version}/{recurso}/{action}?{filtros}.
// El path termina en "?" aunque no haya filtros (contrato de wire).
func (r *Resource) List(ctx context.Context, filtros Filtros, opts *Opcoes) (*Lista, error) {
	ef := r.resolve(opts)
	path := fmt.Sprintf("%s/%s/%s?%s", ef.version, ef.endpoint, ef.action, filtros.Encode())
	return listar(ctx, ef.service, path)
}

// Retrieve trae un record por id: GET {version}/{recurso}/{id}/{action}.
func (r *Resource) Retrieve(ctx context.Context, id int64, opts *Opcoes) (*Registro, error) {
	ef := r.resolve(opts)
	path := fmt.Sprintf("%s/%s/%d/%s", ef.version, ef.endpoint, id, ef.action)
	return r.registro(ctx, ef, http.MethodGet, path, nil)
}

// RetrieveByFilters trae el primer record de un listado filtrado. Sirve
// donde se espera un único registro pero el backend no expone retrieve por
// clave natural. La acción no aplica acá (tampoco aplicaba en el app).
func (r *Resource) RetrieveByFilters(ctx context.Context, filtros Filtros, opts *Opcoes) (*Busca, error) {
	ef := r.resolve(opts)
	path := fmt.Sprintf("%s/%s/?%s", ef.version, ef.endpoint, filtros.Encode())

	lista, err := listar(ctx, ef.service, path)
	if err != nil {
		return nil, err
	}

	busca := &Busca{OK: true, Status: lista.Status}
	if len(lista.Resultados) > 0 {
		busca.Registro = lista.Resultados[0]
	}
	return busca, nil
}

// Create crea un record: POST {version}/{recurso}/{action}.
func (r *Resource) Create(ctx context.Context, body any, opts *Opcoes) (*Registro, error) {
	ef := r.resolve(opts)
	path := fmt.Sprintf("%s/%s/%s", ef.version, ef.endpoint, ef.action)
	return r.registro(ctx, ef, http.MethodPost, path, body)
}

// Update aplica un update parcial: PATCH {version}/{recurso}/{id}/.
// La acción no se aplica: un update parcial nunca apunta a sub-acciones.
func (r *Resource) Update(ctx context.Context, id int64, body any, opts *Opcoes) (*Registro, error) {
	ef := r.resolve(opts)
	path := fmt.Sprintf("%s/%s/%d/", ef.version, ef.endpoint, id)
	return r.registro(ctx, ef, http.MethodPatch, path, body)
}

// Replace hace un update completo: PUT {version}/{recurso}/{id}/{action}.
// A diferencia de Update sí soporta acciones; es la vía para transiciones
// de estado tipo "aceitar"/"recusar".
func (r *Resource) Replace(ctx context.Context, id int64, body any, opts *Opcoes) (*Registro, error) {
	ef := r.resolve(opts)
	path := fmt.Sprintf("%s/%s/%d/%s", ef.version, ef.endpoint, id, ef.action)
	return r.registro(ctx, ef, http.MethodPut, path, body)
}

// Delete apunta a la raíz de la colección con PUT. No es un typo: es el
// wire exacto que el backend desplegado recibe hoy; ver DESIGN.md antes de
// "arreglarlo". Nunca corta el flujo: el fallo viene como valor de error
// (*Erro o *TransportError), nil en éxito.
func (r *Resource) Delete(ctx context.Context, opts *Opcoes) error {
	ef := r.resolve(opts)
	path := fmt.Sprintf("%s/%s/", ef.version, ef.endpoint)

	resp, err := ef.service.Do(ctx, http.MethodPut, path, nil)
	if err != nil {
		return &TransportError{Err: err}
	}
	if !resp.OK() {
		return DecodeErro(resp)
	}
	return nil
}

func (r *Resource) registro(ctx context.Context, ef efetivas, method, path string, body any) (*Registro, error) {
	resp, err := ef.service.Do(ctx, method, path, body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if !resp.OK() {
		return nil, DecodeErro(resp)
	}
	return &Registro{Status: resp.StatusCode, Dados: resp.Body}, nil
}

func listar(ctx context.Context, service *httpclient.Client, pathOrURL string) (*Lista, error) {
	resp, err := service.Do(ctx, http.MethodGet, pathOrURL, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if !resp.OK() {
		return nil, DecodeErro(resp)
	}

	lista := &Lista{OK: true, Status: resp.StatusCode}
	if err := resp.Decode(lista); err != nil {
		return nil, err
	}
	return lista, nil
}
