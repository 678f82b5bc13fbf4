package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"sarc-client/internal/platform/httpclient"
)

// Erro representa un rechazo remoto: hubo respuesta HTTP y no fue 2xx.
// Campos trae el body de error tal cual lo mandó el backend, típicamente
// campo => mensaje de validación, o un único campo "mensagem".
type Erro struct {
	Status int
	Campos map[string]any
}

func (e *Erro) Error() string {
	if m := e.Mensagem(); m != "" {
		return fmt.Sprintf("api: status=%d: %s", e.Status, m)
	}
	return fmt.Sprintf("api: status=%d", e.Status)
}

// Mensagem devuelve el campo "mensagem" del body de error, si existe.
func (e *Erro) Mensagem() string {
	if e == nil {
		return ""
	}
	if v, ok := e.Campos["mensagem"]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// TransportError es un fallo de red: no llegó ninguna respuesta HTTP
// (DNS, conexión, timeout). El viejo "$status: null".
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("api: transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransport informa si err fue un fallo de transporte.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// Status devuelve el status HTTP de un rechazo remoto.
// ok=false cuando el error fue de transporte o no salió de esta capa.
func Status(err error) (int, bool) {
	var e *Erro
	if errors.As(err, &e) {
		return e.Status, true
	}
	return 0, false
}

// DecodeErro arma el Erro desde una respuesta no-2xx.
// Body no-JSON o vacío => Erro sin campos.
func DecodeErro(resp *httpclient.Response) *Erro {
	campos := map[string]any{}
	if len(resp.Body) > 0 {
		_ = json.Unmarshal(resp.Body, &campos)
	}
	if len(campos) == 0 {
		campos = nil
	}
	return &Erro{Status: resp.StatusCode, Campos: campos}
}
