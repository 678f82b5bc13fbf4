package api

import "encoding/json"

// Lista es el envelope de listado del backend más los flags sintéticos
// que permiten branchear sin inspeccionar el error.
type Lista struct {
	OK     bool `json:"-"`
	Status int  `json:"-"`

	Total      int               `json:"total"`
	Proxima    *string           `json:"proxima"`
	Anterior   *string           `json:"anterior"`
	Resultados []json.RawMessage `json:"resultados"`
}

// Registro es una respuesta de detalle: el record crudo más el status.
type Registro struct {
	Status int
	Dados  json.RawMessage
}

// Decode decodifica el record en v.
func (r *Registro) Decode(v any) error {
	if r == nil || len(r.Dados) == 0 {
		return nil
	}
	return json.Unmarshal(r.Dados, v)
}

// Busca es el resultado de RetrieveByFilters: el primer registro que
// matcheó los filtros, o Registro nil si la lista vino vacía.
type Busca struct {
	OK       bool
	Status   int
	Registro json.RawMessage
}

// Decode decodifica el registro encontrado en v. Sin registro => no toca v.
func (b *Busca) Decode(v any) error {
	if b == nil || len(b.Registro) == 0 {
		return nil
	}
	return json.Unmarshal(b.Registro, v)
}
