// Package backend implementa los puertos de salida hacia la API REST de tareas y usuarios.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/Gestor-Tareas/internal/application/ports"
	"github.com/jhoicas/Gestor-Tareas/internal/domain"
	"github.com/jhoicas/Gestor-Tareas/pkg/config"
	"github.com/jhoicas/Gestor-Tareas/pkg/logger"
)

const name = "github.com/jhoicas/Gestor-Tareas/internal/infrastructure/backend"

// Límite de lectura de respuestas.
const maxBody = 4 << 20

var (
	_ ports.AuthGateway = (*Client)(nil)
	_ ports.TaskGateway = (*Client)(nil)
	_ ports.UserGateway = (*Client)(nil)
)

// Client cliente HTTP del backend. Una petición por operación, sin reintentos.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente con la URL base y el timeout de la configuración.
func NewClient(cfg config.BackendConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		log:        log,
	}
}

// NewClientWithHTTP permite inyectar el *http.Client (tests).
func NewClientWithHTTP(baseURL string, httpClient *http.Client, log *logger.Logger) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient, log: log}
}

// do ejecuta una llamada autenticada:
//   - sin token no se envía nada (ErrNotAuthenticated)
//   - 401 expira la sesión y devuelve ErrSessionExpired
//   - otro no-2xx devuelve *RequestFailedError con el detail del backend
func (c *Client) do(ctx context.Context, op string, ts ports.TokenSource, method, path string, in, out any) error {
	token := ""
	if ts != nil {
		token = ts.Token()
	}
	if token == "" {
		return domain.ErrNotAuthenticated
	}

	status, body, err := c.roundTrip(ctx, op, method, path, token, in)
	if err != nil {
		return err
	}
	switch {
	case status == http.StatusUnauthorized:
		ts.Expire(ctx)
		return domain.ErrSessionExpired
	case status < 200 || status > 299:
		return domain.NewRequestFailed(status, parseDetail(body))
	}
	return decodeBody(op, body, out)
}

// roundTrip envía la petición y devuelve estado y cuerpo. Solo falla por transporte.
func (c *Client) roundTrip(ctx context.Context, op, method, path, token string, in any) (int, []byte, error) {
	ctx, span := otel.Tracer(name).Start(ctx, op, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	)

	var reqBody io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return 0, nil, fmt.Errorf("%s: serializar request: %w", op, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: crear HTTP request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		c.log.Debug().Err(err).Str("op", op).Str("method", method).Str("path", path).Msg("backend inalcanzable")
		return 0, nil, &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		span.RecordError(err)
		return 0, nil, &domain.NetworkError{Op: op, Err: err}
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= 400 {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}
	c.log.Debug().
		Str("op", op).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("backend")
	return resp.StatusCode, body, nil
}

func decodeBody(op string, body []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: deserializar respuesta: %w", op, err)
	}
	return nil
}

// parseDetail extrae el mensaje de error: detail string, lista FastAPI de {msg}, o message.
func parseDetail(body []byte) string {
	var payload struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if len(payload.Detail) > 0 {
		var s string
		if err := json.Unmarshal(payload.Detail, &s); err == nil {
			return s
		}
		var items []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(payload.Detail, &items); err == nil {
			msgs := make([]string, 0, len(items))
			for _, it := range items {
				if it.Msg != "" {
					msgs = append(msgs, it.Msg)
				}
			}
			if len(msgs) > 0 {
				return strings.Join(msgs, "; ")
			}
		}
	}
	return payload.Message
}
