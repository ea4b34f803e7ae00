// Package api is the HTTP boundary to the hosted functions backend. It
// normalizes transport, status and payload failures into the package's error
// taxonomy; everything above it works with typed errors only.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/enokjanuario/primeholding/internal/client/token"
	"github.com/enokjanuario/primeholding/internal/logging"
)

const defaultTimeout = 15 * time.Second

// Client talks to the backend. The bearer credential is read from the token
// store on every request, so a login in one component is immediately picked
// up by all others.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  token.Store
	log     logging.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (timeouts, transports).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(baseURL string, tokens token.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorPayload is the failure body shape: the backend uses either "error"
// or "message" for the human-readable text.
type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do performs one round trip. body (when non-nil) is JSON-encoded; a 2xx
// response is decoded into out (when non-nil). Failures come back as *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if tok, ok := c.tokens.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return &Error{Status: 0, Message: "erro de conexão com o servidor", Kind: ErrNetwork}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: "erro ao ler resposta", Kind: ErrServer}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.classify(ctx, method, path, resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			c.log.Warn(ctx, "malformed response", "method", method, "path", path, "error", err)
			return &Error{Status: resp.StatusCode, Message: "resposta inválida do servidor", Kind: ErrServer}
		}
	}
	return nil
}

func (c *Client) classify(ctx context.Context, method, path string, status int, data []byte) error {
	var payload errorPayload
	_ = json.Unmarshal(data, &payload)

	msg := payload.Error
	if msg == "" {
		msg = payload.Message
	}
	if msg == "" {
		msg = "erro na requisição"
	}

	kind := ErrServer
	if status == http.StatusUnauthorized {
		kind = ErrUnauthenticated
	}

	c.log.Warn(ctx, "request rejected", "method", method, "path", path, "status", status)
	return &Error{Status: status, Message: msg, Kind: kind}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// listResponse is the envelope used by every collection endpoint.
type listResponse[T any] struct {
	Dados []T `json:"dados"`
}
