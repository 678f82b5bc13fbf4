package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"sarc-client/internal/platform/logger"
)

const (
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 1 << 20 // 1MB
)

// TokenSource entrega el token de sesión vigente antes de cada request.
// Se lee fresco en cada envío; si devuelve "", no se manda Authorization.
type TokenSource func(ctx context.Context) (string, error)

// Config del transporte HTTP hacia el backend SARC.
type Config struct {
	// BaseURL del backend (obligatoria para paths relativos).
	BaseURL string

	// Timeout del http.Client. Si <= 0 se usa DefaultTimeout.
	Timeout time.Duration

	// Transport opcional (p.ej. para tests).
	Transport http.RoundTripper

	// Tokens opcional: capability que entrega el bearer token.
	Tokens TokenSource

	// Logger opcional: si viene, loguea cada request a nivel debug.
	Logger logger.Logger
}

// Client envuelve *http.Client con los helpers que necesita la capa REST:
// resolución de URL, bearer token por request y cuerpo JSON.
type Client struct {
	http    *http.Client
	baseURL string
	tokens  TokenSource
	log     logger.Logger
}

func New(cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	tr := cfg.Transport
	if tr == nil {
		tr = http.DefaultTransport
	}

	base := strings.TrimSpace(cfg.BaseURL)
	if base != "" {
		if _, err := url.ParseRequestURI(base); err != nil {
			return nil, fmt.Errorf("httpclient: invalid base url: %w", err)
		}
		base = strings.TrimRight(base, "/")
	}

	return &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: tr,
		},
		baseURL: base,
		tokens:  cfg.Tokens,
		log:     cfg.Logger,
	}, nil
}

// Response es la respuesta cruda del backend. Cualquier status cuenta como
// "hubo respuesta": la clasificación 2xx/4xx/5xx la hace el caller.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK indica status 2xx.
func (r *Response) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode decodifica el body JSON en v. Body vacío no es error.
func (r *Response) Decode(v any) error {
	if v == nil || len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

// Do hace un request JSON.
// - method: GET/POST/etc
// - pathOrURL: URL absoluta o path relativo si BaseURL está seteado
// - in: body a enviar (opcional). Si nil => no body.
// Devuelve error SOLO ante fallo de transporte (no llegó respuesta HTTP).
// Una respuesta no-2xx NO es error acá: viene en Response.
func (c *Client) Do(ctx context.Context, method, pathOrURL string, in any) (*Response, error) {
	if c == nil || c.http == nil {
		return nil, errors.New("httpclient: nil client")
	}

	fullURL, err := c.resolveURL(pathOrURL)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	// El token se lee fresco antes de cada envío. Token vacío => sin header
	// (mandar "Bearer null" como hacía el cliente viejo era un bug).
	if c.tokens != nil {
		token, err := c.tokens(ctx)
		if err != nil {
			return nil, fmt.Errorf("httpclient: token source: %w", err)
		}
		if strings.TrimSpace(token) != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if c.log != nil {
			c.log.Debug("request failed", map[string]any{
				"method": method,
				"url":    fullURL,
				"err":    err.Error(),
			})
		}
		return nil, fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := readAtMost(resp.Body, maxBodyBytes)

	if c.log != nil {
		c.log.Debug("request done", map[string]any{
			"method":   method,
			"url":      fullURL,
			"status":   resp.StatusCode,
			"duration": time.Since(start).String(),
		})
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       raw,
	}, nil
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("httpclient: empty url")
	}

	// URL absoluta (p.ej. cursor "proxima" de paginación) se usa tal cual.
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL, nil
	}

	if c.baseURL == "" {
		return "", errors.New("httpclient: relative path requires BaseURL")
	}

	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.baseURL + pathOrURL, nil
}

func readAtMost(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		max = maxBodyBytes
	}
	lr := io.LimitReader(r, max)
	return io.ReadAll(lr)
}
