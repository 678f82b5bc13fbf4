package api

import (
	"fmt"
	"strings"
)

// Filtro es un par clave/valor de filtro de búsqueda.
type Filtro struct {
	Chave string
	Valor any
}

// Filtros es un mapeo plano ordenado: a diferencia de un map de Go, el
// orden de inserción se preserva al serializar.
type Filtros []Filtro

func (f Filtros) Add(chave string, valor any) Filtros {
	return append(f, Filtro{Chave: chave, Valor: valor})
}

// Encode produce "k=v&k2=v2" en orden de inserción. Mapeo vacío => "".
// No hace percent-encoding: es el contrato que el backend desplegado ya
// recibe; valores con '&', '=' o '#' corrompen el querystring y son
// responsabilidad del caller.
func (f Filtros) Encode() string {
	if len(f) == 0 {
		return ""
	}
	partes := make([]string, 0, len(f))
	for _, filtro := range f {
		partes = append(partes, fmt.Sprintf("%s=%v", filtro.Chave, filtro.Valor))
	}
	return strings.Join(partes, "&")
}
