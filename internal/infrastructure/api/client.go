// Package api implementa el cliente del backend REST: el único canal por el
// que el panel toca la red. Centraliza la inyección de la credencial bearer y
// la normalización de errores a los tipos de dominio.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/Alexander08S-C/inventario-frontend/internal/domain"
	"github.com/Alexander08S-C/inventario-frontend/pkg/config"
	"github.com/Alexander08S-C/inventario-frontend/pkg/logger"
)

// TokenSource entrega la credencial vigente. Se consulta en cada petición
// (nunca se cachea) para que un logout o re-login entre dos llamadas se
// respete de inmediato.
type TokenSource func() string

// Client cliente HTTP compartido por todos los puertos del backend.
type Client struct {
	http *resty.Client
	log  *logger.Logger
}

// NewClient construye el cliente sobre la URL base del backend.
func NewClient(cfg config.APIConfig, token TokenSource, log *logger.Logger) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout()).
		SetHeader("Accept", "application/json")

	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if tok := token(); tok != "" {
			r.SetAuthToken(tok)
		}
		r.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	return &Client{http: rc, log: log}
}

// do ejecuta una petición y devuelve el cuerpo crudo de una respuesta 2xx.
// Cualquier otra cosa vuelve normalizada: 401/403/404 como centinelas de
// dominio, 422 como *ValidationError con el payload por campo intacto, el
// resto como *APIError; los fallos de transporte envuelven ErrUnavailable.
func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body any) ([]byte, error) {
	r := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		r.SetQueryParams(query)
	}
	if body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := r.Execute(method, path)
	if err != nil {
		c.log.Error().Str("method", method).Str("path", path).Err(err).Msg("fallo de transporte contra el backend")
		return nil, fmt.Errorf("%s %s: %w", method, path, domain.ErrUnavailable)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("petición al backend")

	if resp.IsError() {
		return nil, c.normalizeError(resp)
	}
	return resp.Body(), nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

// errorBody forma de los cuerpos de error del backend. Para 422 incluye el
// mapa campo -> lista de mensajes del que dependen todos los formularios.
type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (c *Client) normalizeError(resp *resty.Response) error {
	var body errorBody
	_ = json.Unmarshal(resp.Body(), &body)

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		// No se limpia la sesión ni se navega desde aquí: esa decisión es de
		// la página (el middleware web redirige a /login).
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnprocessableEntity:
		return &domain.ValidationError{Message: body.Message, Errors: body.Errors}
	default:
		return &domain.APIError{Status: resp.StatusCode(), Message: body.Message}
	}
}

// decodeList decodifica un listado que puede venir desnudo o envuelto en
// {data: [...]}, según el endpoint.
func decodeList[T any](data []byte) ([]T, error) {
	var envelope struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}
	var bare []T
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("decodificar listado: %w", err)
	}
	return bare, nil
}

// decodeObject decodifica un objeto que puede venir desnudo o como {data: {...}}.
func decodeObject[T any](data []byte) (*T, error) {
	var envelope struct {
		Data *T `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}
	out := new(T)
	if err := json.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("decodificar objeto: %w", err)
	}
	return out, nil
}
