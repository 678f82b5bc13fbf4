package api

import (
	"testing"

	"sarc-client/internal/platform/httpclient"
)

func nuevoService(t *testing.T) *httpclient.Client {
	t.Helper()
	c, err := httpclient.New(httpclient.Config{BaseURL: "http://backend.local/api"})
	if err != nil {
		t.Fatalf("httpclient.New: %v", err)
	}
	return c
}

func TestResolver_Defaults(t *testing.T) {
	global := nuevoService(t)

	ef := resolver(nil, Opcoes{}, global, "lugares")

	if ef.service != global {
		t.Fatalf("expected global service")
	}
	if ef.version != "v1" {
		t.Fatalf("version: got %q want v1", ef.version)
	}
	if ef.endpoint != "lugares" {
		t.Fatalf("endpoint: got %q", ef.endpoint)
	}
	if ef.action != "" {
		t.Fatalf("action: got %q, want empty", ef.action)
	}
}

func TestResolver_PrecedenciaCallSobreRecursoSobreGlobal(t *testing.T) {
	global := nuevoService(t)
	recursoSvc := nuevoService(t)
	callSvc := nuevoService(t)

	padrao := Opcoes{
		Service:        recursoSvc,
		Version:        "v2",
		Endpoint:       "eventos",
		ActionEndpoint: "convidar",
	}

	// Sin opciones de call gana el nivel recurso.
	ef := resolver(nil, padrao, global, "lugares")
	if ef.service != recursoSvc || ef.version != "v2" || ef.endpoint != "eventos" {
		t.Fatalf("resource-level defaults not applied: %+v", ef)
	}
	if ef.action != "convidar/" {
		t.Fatalf("action: got %q want convidar/", ef.action)
	}

	// Con opciones de call, gana el call.
	call := &Opcoes{
		Service:        callSvc,
		Version:        "v3",
		Endpoint:       "usuarios",
		ActionEndpoint: "aceitar",
	}
	ef = resolver(call, padrao, global, "lugares")
	if ef.service != callSvc || ef.version != "v3" || ef.endpoint != "usuarios" {
		t.Fatalf("call-level options not applied: %+v", ef)
	}
	if ef.action != "aceitar/" {
		t.Fatalf("action: got %q want aceitar/", ef.action)
	}
}

func TestResolver_ActionConBarraNoDuplica(t *testing.T) {
	global := nuevoService(t)
	ef := resolver(&Opcoes{ActionEndpoint: "aceitar/"}, Opcoes{}, global, "amizades_usuarios")
	if ef.action != "aceitar/" {
		t.Fatalf("action: got %q", ef.action)
	}
}
