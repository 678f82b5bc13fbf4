package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"sarc-client/internal/api"
	"sarc-client/internal/platform/httpclient"
	"sarc-client/internal/platform/logger"
	"sarc-client/internal/ports/credentials"
)

// Endpoints del módulo auth del backend, relativos al BaseURL de auth
// (p.ej. https://.../api/auth/).
const (
	epLogin            = "token/obtain/"
	epCadastro         = "cadastro/"
	epValidarEmail     = "validar_cadastro_email/"
	epValidarUsername  = "validar_cadastro_username/"
	epEnviarEmailReset = "enviar_email_redefinicao_senha/"
	epConfirmarCodigo  = "confirmar_codigo_redefinir_senha/"
	epRedefinirSenha   = "redefinir_senha/"
	epTrocarSenha      = "trocar_senha/"
)

var (
	ErrNotConfigured      = errors.New("session not configured")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Config struct {
	// Service es el transporte apuntando al módulo auth del backend.
	Service *httpclient.Client

	// Store persiste token y datos de usuario entre procesos.
	Store credentials.Store

	Logger logger.Logger
}

// Sessao maneja el ciclo de vida de la credencial: Login/Cadastro la crean,
// el transporte la lee fresca antes de cada request (vía
// credentials.TokenSource) y Logout la borra.
type Sessao struct {
	service *httpclient.Client
	store   credentials.Store
	log     logger.Logger
}

func New(cfg Config) (*Sessao, error) {
	if cfg.Service == nil || cfg.Store == nil {
		return nil, ErrNotConfigured
	}
	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &Sessao{
		service: cfg.Service,
		store:   cfg.Store,
		log:     log,
	}, nil
}

type loginResponse struct {
	Access string `json:"access"`
	User   struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// Login obtiene el token y lo persiste junto con id y email del usuario.
// Rechazo del backend => *api.Erro; fallo de red => *api.TransportError.
// Ante cualquier error no se persiste nada.
func (s *Sessao) Login(ctx context.Context, email, senha string) (string, error) {
	resp, err := s.service.Do(ctx, http.MethodPost, epLogin, map[string]string{
		"email":    email,
		"password": senha,
	})
	if err != nil {
		return "", &api.TransportError{Err: err}
	}
	if !resp.OK() {
		return "", api.DecodeErro(resp)
	}

	var out loginResponse
	if err := resp.Decode(&out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Access) == "" {
		return "", ErrInvalidCredentials
	}

	if err := s.store.Set(ctx, credentials.KeyToken, out.Access); err != nil {
		return "", fmt.Errorf("session: persist token: %w", err)
	}
	if err := s.store.Set(ctx, credentials.KeyUserID, strconv.FormatInt(out.User.ID, 10)); err != nil {
		return "", fmt.Errorf("session: persist user id: %w", err)
	}
	if err := s.store.Set(ctx, credentials.KeyUserEmail, out.User.Email); err != nil {
		return "", fmt.Errorf("session: persist user email: %w", err)
	}

	s.log.Info("login ok", map[string]any{"user_id": out.User.ID})
	return out.Access, nil
}

// Cadastro registra el usuario y encadena Login con las mismas credenciales.
// Usa el mismo ctx: abandonar el flujo cancela los dos pasos.
func (s *Sessao) Cadastro(ctx context.Context, username, nome, sobrenome, email, senha string) (string, error) {
	resp, err := s.service.Do(ctx, http.MethodPost, epCadastro, map[string]string{
		"username":   username,
		"first_name": nome,
		"last_name":  sobrenome,
		"email":      email,
		"password":   senha,
	})
	if err != nil {
		return "", &api.TransportError{Err: err}
	}
	if !resp.OK() {
		return "", api.DecodeErro(resp)
	}

	return s.Login(ctx, email, senha)
}

// ValidarCadastroEmail responde si el email ya está registrado.
// Fail-closed: si el chequeo no se pudo completar (red caída, rechazo),
// cuenta como "ya tomado" para no dejar pasar un registro duplicado.
func (s *Sessao) ValidarCadastroEmail(ctx context.Context, email, excludeID string) bool {
	return s.tomado(ctx, epValidarEmail, "email", email, excludeID)
}

// ValidarCadastroUsername ídem para el username.
func (s *Sessao) ValidarCadastroUsername(ctx context.Context, username, excludeID string) bool {
	return s.tomado(ctx, epValidarUsername, "username", username, excludeID)
}

func (s *Sessao) tomado(ctx context.Context, path, campo, valor, excludeID string) bool {
	uri := fmt.Sprintf("%s?%s", path,
		api.Filtros{}.Add(campo, valor).Add("id", excludeID).Encode())

	resp, err := s.service.Do(ctx, http.MethodGet, uri, nil)
	if err != nil || !resp.OK() {
		return true
	}

	var out struct {
		Cadastrado bool `json:"cadastrado"`
	}
	if err := resp.Decode(&out); err != nil {
		return true
	}
	return out.Cadastrado
}

// EnviarEmailRedefinicaoSenha dispara el mail con el código de reset.
func (s *Sessao) EnviarEmailRedefinicaoSenha(ctx context.Context, email string) error {
	resp, err := s.service.Do(ctx, http.MethodPost, epEnviarEmailReset, map[string]string{
		"usuario": email,
	})
	if err != nil {
		return &api.TransportError{Err: err}
	}
	if !resp.OK() {
		return api.DecodeErro(resp)
	}
	return nil
}

const (
	ReasonServerOff   = "server_off"
	ReasonInvalidCode = "invalid_code"
)

// Confirmacao es el veredicto sobre un código de reset. Reason solo viene
// seteado en fallo.
type Confirmacao struct {
	OK     bool
	Reason string
}

// ConfirmarCodigoRedefinicaoSenha valida el código recibido por mail.
// Solo distingue dos clases de fallo: el servidor no contestó (server_off)
// y cualquier otro rechazo (invalid_code).
func (s *Sessao) ConfirmarCodigoRedefinicaoSenha(ctx context.Context, email, codigo string) Confirmacao {
	resp, err := s.service.Do(ctx, http.MethodPost, epConfirmarCodigo, map[string]string{
		"usuario": email,
		"codigo":  codigo,
	})
	if err != nil {
		return Confirmacao{Reason: ReasonServerOff}
	}
	if !resp.OK() {
		return Confirmacao{Reason: ReasonInvalidCode}
	}
	return Confirmacao{OK: true}
}

// RedefinirSenha fija la contraseña nueva y encadena Login con ella.
func (s *Sessao) RedefinirSenha(ctx context.Context, email, novaSenha string) (string, error) {
	resp, err := s.service.Do(ctx, http.MethodPost, epRedefinirSenha, map[string]string{
		"usuario":    email,
		"nova_senha": novaSenha,
	})
	if err != nil {
		return "", &api.TransportError{Err: err}
	}
	if !resp.OK() {
		return "", api.DecodeErro(resp)
	}

	return s.Login(ctx, email, novaSenha)
}

// TrocarSenha cambia la contraseña de un usuario ya logueado.
func (s *Sessao) TrocarSenha(ctx context.Context, email, senhaAtual, novaSenha string) error {
	resp, err := s.service.Do(ctx, http.MethodPost, epTrocarSenha, map[string]string{
		"usuario":     email,
		"senha_atual": senhaAtual,
		"nova_senha":  novaSenha,
	})
	if err != nil {
		return &api.TransportError{Err: err}
	}
	if !resp.OK() {
		return api.DecodeErro(resp)
	}
	return nil
}

// Logout borra la sesión local. No hay revocación server-side.
func (s *Sessao) Logout(ctx context.Context) error {
	claves := []string{credentials.KeyToken, credentials.KeyUserID, credentials.KeyUserEmail}
	for _, k := range claves {
		if err := s.store.Delete(ctx, k); err != nil {
			return fmt.Errorf("session: clear %s: %w", k, err)
		}
	}
	return nil
}

// Token devuelve el token persistido, "" si no hay sesión activa.
func (s *Sessao) Token(ctx context.Context) (string, error) {
	v, err := s.store.Get(ctx, credentials.KeyToken)
	if err != nil {
		if errors.Is(err, credentials.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return v, nil
}
