package api

import (
	"strings"
	"testing"
)

func TestFiltros_Encode_PreservaOrden(t *testing.T) {
	filtros := Filtros{}.
		Add("busca", "praça central").
		Add("gratuito", true).
		Add("categoria", 3)

	got := filtros.Encode()
	want := "busca=praça central&gratuito=true&categoria=3"
	if got != want {
		t.Fatalf("encode: got %q want %q", got, want)
	}

	// El encode tiene que ser reversible partiendo por '&' y '=' mientras
	// los valores no contengan esos caracteres.
	pares := strings.Split(got, "&")
	if len(pares) != len(filtros) {
		t.Fatalf("expected %d pairs, got %d", len(filtros), len(pares))
	}
	for i, par := range pares {
		kv := strings.SplitN(par, "=", 2)
		if kv[0] != filtros[i].Chave {
			t.Fatalf("pair %d: key %q, want %q", i, kv[0], filtros[i].Chave)
		}
	}
}

func TestFiltros_Encode_Vacio(t *testing.T) {
	if got := (Filtros{}).Encode(); got != "" {
		t.Fatalf("empty filters: got %q, want empty string", got)
	}
	if got := Filtros(nil).Encode(); got != "" {
		t.Fatalf("nil filters: got %q, want empty string", got)
	}
}

func TestFiltros_Encode_NoEscapa(t *testing.T) {
	// Limitación documentada: no hay percent-encoding.
	got := Filtros{}.Add("nome", "a&b=c").Encode()
	if got != "nome=a&b=c" {
		t.Fatalf("got %q", got)
	}
}
