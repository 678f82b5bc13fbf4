package api_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sarc-client/internal/api"
	"sarc-client/internal/platform/httpclient"
)

type captura struct {
	metodo string
	uri    string
	auth   string
}

func servidor(t *testing.T, status int, body string, cap *captura) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cap != nil {
			cap.metodo = r.Method
			cap.uri = r.URL.RequestURI()
			cap.auth = r.Header.Get("Authorization")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func cliente(t *testing.T, baseURL string, tokens httpclient.TokenSource) *httpclient.Client {
	t.Helper()
	c, err := httpclient.New(httpclient.Config{BaseURL: baseURL, Tokens: tokens})
	if err != nil {
		t.Fatalf("httpclient.New: %v", err)
	}
	return c
}

func TestList_Exito(t *testing.T) {
	var cap captura
	ts := servidor(t, http.StatusOK,
		`{"total":2,"proxima":null,"anterior":null,"resultados":[{"id":1},{"id":2}]}`, &cap)
	defer ts.Close()

	r := api.NewResource(cliente(t, ts.URL, nil), "lugares")

	lista, err := r.List(context.Background(), api.Filtros{}.Add("busca", "bar"), nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !lista.OK || lista.Status != http.StatusOK {
		t.Fatalf("envelope flags: %+v", lista)
	}
	if lista.Total != 2 || len(lista.Resultados) != 2 {
		t.Fatalf("payload: total=%d resultados=%d", lista.Total, len(lista.Resultados))
	}
	if lista.Proxima != nil || lista.Anterior != nil {
		t.Fatalf("cursors should be nil: %+v", lista)
	}
	if cap.metodo != http.MethodGet || cap.uri != "/v1/lugares/?busca=bar" {
		t.Fatalf("request: %s %s", cap.metodo, cap.uri)
	}
}

func TestList_SinFiltrosTerminaEnInterrogante(t *testing.T) {
	var cap captura
	ts := servidor(t, http.StatusOK, `{"total":0,"resultados":[]}`, &cap)
	defer ts.Close()

	r := api.NewResource(cliente(t, ts.URL, nil), "eventos")
	if _, err := r.List(context.Background(), nil, nil); err != nil {
		t.Fatalf("List: %v", err)
	}
	if cap.uri != "/v1/eventos/?" {
		t.Fatalf("uri: got %q, want bare trailing '?'", cap.uri)
	}
}

func TestList_FalloDeTransporte(t *testing.T) {
	ts := servidor(t, http.StatusOK, `{}`, nil)
	ts.Close() // servidor caído: el request no recibe respuesta

	r := api.NewResource(cliente(t, ts.URL, nil), "lugares")

	_, err := r.List(context.Background(), nil, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !api.IsTransport(err) {
		t.Fatalf("expected transport failure, got %v", err)
	}
	if _, ok := api.Status(err); ok {
		t.Fatalf("transport failure must not carry an HTTP status")
	}
}

func TestRetrieve_Exito(t *testing.T) {
	var cap captura
	ts := servidor(t, http.StatusOK, `{"id":7,"nome":"Praça Central"}`, &cap)
	defer ts.Close()

	r := api.NewResource(cliente(t, ts.URL, nil), "lugares")

	reg, err := r.Retrieve(context.Background(), 7, nil)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if reg.Status != http.StatusOK {
		t.Fatalf("status: %d", reg.Status)
	}
	var lugar struct {
		ID   int64  `json:"id"`
		Nome string `json:"nome"`
	}
	if err := reg.Decode(&lugar); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if lugar.ID != 7 || lugar.Nome != "Praça Central" {
		t.Fatalf("record: %+v", lugar)
	}
	if cap.uri != "/v1/lugares/7/" {
		t.Fatalf("uri: %s", cap.uri)
	}
}

func TestRetrieve_Rechazo404(t *testing.T) {
	ts := servidor(t, http.StatusNotFound, `{"mensagem":"not found"}`, nil)
	defer ts.Close()

	r := api.NewResource(cliente(t, ts.URL, nil), "lugares")

	_, err := r.Retrieve(context.Background(), 99, nil)
	var rechazo *api.Erro
	if !errors.As(err, &rechazo) {
		t.Fatalf("expected *api.Erro, got %v", err)
	}
	if rechazo.Status != http.StatusNotFound {
		t.Fatalf("status: %d", rechazo.Status)
	}
	if rechazo.Mensagem() != "not found" {
		t.Fatalf("mensagem: %q", rechazo.Mensagem())
	}
}

func TestRetrieveByFilters(t *testing.T) {
	t.Run("vacio", func(t *testing.T) {
		var cap captura
		ts := servidor(t, http.StatusOK, `{"total":0,"resultados":[]}`, &cap)
		defer ts.Close()

		r := api.NewResource(cliente(t, ts.URL, nil), "usuarios")
		busca, err := r.RetrieveByFilters(context.Background(),
			api.Filtros{}.Add("email", "a@b.com"), nil)
		if err != nil {
			t.Fatalf("RetrieveByFilters: %v", err)
		}
		if !busca.OK || busca.Status != http.StatusOK {
			t.Fatalf("flags: %+v", busca)
		}
		if busca.Registro != nil {
			t.Fatalf("expected nil registro, got %s", busca.Registro)
		}
		if cap.uri != "/v1/usuarios/?email=a@b.com" {
			t.Fatalf("uri: %s", cap.uri)
		}
	})

	t.Run("se queda con el primero", func(t *testing.T) {
		ts := servidor(t, http.StatusOK,
			`{"total":2,"resultados":[{"id":1},{"id":2}]}`, nil)
		defer ts.Close()

		r := api.NewResource(cliente(t, ts.URL, nil), "usuarios")
		busca, err := r.RetrieveByFilters(context.Background(), nil, nil)
		if err != nil {
			t.Fatalf("RetrieveByFilters: %v", err)
		}
		var u struct {
			ID int64 `json:"id"`
		}
		if err := busca.Decode(&u); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if u.ID != 1 {
			t.Fatalf("expected first record, got id=%d", u.ID)
		}
	})
}

func TestCreate_ConAction(t *testing.T) {
	var cap captura
	ts := servidor(t, http.StatusCreated, `{"id":10}`, &cap)
	defer ts.Close()

	r := api.NewResource(cliente(t, ts.URL, nil), "inscricoes_evento").
		WithDefaults(api.Opcoes{ActionEndpoint: "convidar"})

	reg, err := r.Create(context.Background(), map[string]any{"evento": 3, "usuario": 8}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if reg.Status != http.StatusCreated {
		t.Fatalf("status: %d", reg.Status)
	}
	if cap.metodo != http.MethodPost || cap.uri != "/v1/inscricoes_evento/convidar/" {
		t.Fatalf("request: %s %s", cap.metodo, cap.uri)
	}
}

func TestUpdate_NoAplicaAction(t *testing.T) {
	var cap captura
	ts := servidor(t, http.StatusOK, `{"id":5}`, &cap)
	defer ts.Close()

	// Aunque el default del recurso traiga acción, PATCH no la usa.
	r := api.NewResource(cliente(t, ts.URL, nil), "amizades_usuarios").
		WithDefaults(api.Opcoes{ActionEndpoint: "aceitar"})

	if _, err := r.Update(context.Background(), 5, map[string]any{"ativo": false}, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if cap.metodo != http.MethodPatch || cap.uri != "/v1/amizades_usuarios/5/" {
		t.Fatalf("request: %s %s", cap.metodo, cap.uri)
	}
}

func TestReplace_ConAction(t *testing.T) {
	var cap captura
	ts := servidor(t, http.StatusOK, `{"id":5,"ativo":true}`, &cap)
	defer ts.Close()

	r := api.NewResource(cliente(t, ts.URL, nil), "amizades_usuarios")

	_, err := r.Replace(context.Background(), 5, nil, &api.Opcoes{ActionEndpoint: "aceitar"})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if cap.metodo != http.MethodPut || cap.uri != "/v1/amizades_usuarios/5/aceitar/" {
		t.Fatalf("request: %s %s", cap.metodo, cap.uri)
	}
}

func TestDelete(t *testing.T) {
	t.Run("exito", func(t *testing.T) {
		var cap captura
		ts := servidor(t, http.StatusOK, ``, &cap)
		defer ts.Close()

		r := api.NewResource(cliente(t, ts.URL, nil), "eventos")
		if err := r.Delete(context.Background(), nil); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		// Compat de wire: el borrado viaja como PUT a la raíz de la colección.
		if cap.metodo != http.MethodPut || cap.uri != "/v1/eventos/" {
			t.Fatalf("request: %s %s", cap.metodo, cap.uri)
		}
	})

	t.Run("rechazo", func(t *testing.T) {
		ts := servidor(t, http.StatusMethodNotAllowed, `{"mensagem":"método não permitido"}`, nil)
		defer ts.Close()

		r := api.NewResource(cliente(t, ts.URL, nil), "eventos")
		err := r.Delete(context.Background(), nil)
		var rechazo *api.Erro
		if !errors.As(err, &rechazo) || rechazo.Status != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405 as value, got %v", err)
		}
	})

	t.Run("transporte", func(t *testing.T) {
		ts := servidor(t, http.StatusOK, ``, nil)
		ts.Close()

		r := api.NewResource(cliente(t, ts.URL, nil), "eventos")
		if err := r.Delete(context.Background(), nil); !api.IsTransport(err) {
			t.Fatalf("expected transport failure, got %v", err)
		}
	})
}

func TestBearerToken(t *testing.T) {
	var cap captura
	ts := servidor(t, http.StatusOK, `{"total":0,"resultados":[]}`, &cap)
	defer ts.Close()

	t.Run("con token", func(t *testing.T) {
		tokens := func(ctx context.Context) (string, error) { return "tok123", nil }
		r := api.NewResource(cliente(t, ts.URL, tokens), "lugares")
		if _, err := r.List(context.Background(), nil, nil); err != nil {
			t.Fatalf("List: %v", err)
		}
		if cap.auth != "Bearer tok123" {
			t.Fatalf("auth header: %q", cap.auth)
		}
	})

	t.Run("sin token no manda header", func(t *testing.T) {
		tokens := func(ctx context.Context) (string, error) { return "", nil }
		r := api.NewResource(cliente(t, ts.URL, tokens), "lugares")
		if _, err := r.List(context.Background(), nil, nil); err != nil {
			t.Fatalf("List: %v", err)
		}
		if cap.auth != "" {
			t.Fatalf("auth header should be absent, got %q", cap.auth)
		}
	})
}

func TestPaginador(t *testing.T) {
	var ts *httptest.Server
	ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("pagina") == "2" {
			fmt.Fprint(w, `{"total":3,"proxima":null,"resultados":[{"id":3}]}`)
			return
		}
		fmt.Fprintf(w, `{"total":3,"proxima":"%s/v1/lugares/?pagina=2","resultados":[{"id":1},{"id":2}]}`, ts.URL)
	}))
	defer ts.Close()

	r := api.NewResource(cliente(t, ts.URL, nil), "lugares")
	p := r.Paginar(nil, nil)

	var total int
	for p.HasNext() {
		lista, err := p.Next(context.Background())
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		total += len(lista.Resultados)
	}
	if total != 3 {
		t.Fatalf("expected 3 records across pages, got %d", total)
	}
}
