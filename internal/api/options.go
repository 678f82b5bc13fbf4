package api

import (
	"strings"

	"sarc-client/internal/platform/httpclient"
)

// Opcoes configura un request puntual. Todo campo vacío cae al default del
// recurso y, si tampoco hay, al global.
type Opcoes struct {
	// Service es el transporte a usar. Default: el del Resource.
	Service *httpclient.Client

	// Version es el segmento de versión del path. Default "v1".
	Version string

	// Endpoint pisa el nombre de colección al que está atado el Resource.
	Endpoint string

	// ActionEndpoint es un sub-path no-CRUD (p.ej. "aceitar", "convidar")
	// que se agrega después del recurso/id.
	ActionEndpoint string
}

// efetivas es la configuración ya resuelta para un request concreto.
type efetivas struct {
	service  *httpclient.Client
	version  string
	endpoint string
	action   string // vacío o "accion/"
}

// resolver aplica la precedencia call > recurso > global. Es una función
// pura: se testea directo, sin transporte.
func resolver(call *Opcoes, padrao Opcoes, global *httpclient.Client, endpoint string) efetivas {
	var c Opcoes
	if call != nil {
		c = *call
	}

	ef := efetivas{
		service:  global,
		version:  "v1",
		endpoint: strings.TrimSpace(endpoint),
	}

	if padrao.Service != nil {
		ef.service = padrao.Service
	}
	if c.Service != nil {
		ef.service = c.Service
	}

	if v := strings.TrimSpace(padrao.Version); v != "" {
		ef.version = v
	}
	if v := strings.TrimSpace(c.Version); v != "" {
		ef.version = v
	}

	if e := strings.TrimSpace(padrao.Endpoint); e != "" {
		ef.endpoint = e
	}
	if e := strings.TrimSpace(c.Endpoint); e != "" {
		ef.endpoint = e
	}

	action := strings.TrimSpace(padrao.ActionEndpoint)
	if a := strings.TrimSpace(c.ActionEndpoint); a != "" {
		action = a
	}
	if action != "" {
		ef.action = strings.TrimRight(action, "/") + "/"
	}

	return ef
}
