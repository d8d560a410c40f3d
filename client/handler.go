// Package client submits a form to the classification endpoint and renders
// the outcome into a Display.
package client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// EndpointPath is the path of the classification endpoint.
const EndpointPath = "/classificar"

// Outcome reports what a submission rendered.
type Outcome struct {
	Categoria string
	Resposta  string
	// Failed is set when the error label was rendered.
	Failed bool
	// Stale is set when a later submission started before this one finished;
	// nothing was rendered.
	Stale bool
}

// Handler submits forms to the classification endpoint.
type Handler struct {
	httpClient *http.Client
	endpoint   string
	display    Display
	log        *zap.Logger

	mu  sync.Mutex
	seq uint64 // guarded by mu
}

// Option configures a Handler.
type Option func(*Handler)

// WithHTTPClient replaces the default client, which has no timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(h *Handler) { h.httpClient = c }
}

// WithLogger sets the logger used for debug traces.
func WithLogger(l *zap.Logger) Option {
	return func(h *Handler) { h.log = l }
}

// NewHandler returns a Handler posting to baseURL + EndpointPath.
func NewHandler(baseURL string, display Display, opts ...Option) *Handler {
	h := &Handler{
		httpClient: &http.Client{},
		endpoint:   strings.TrimRight(baseURL, "/") + EndpointPath,
		display:    display,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Submit resets the display, posts form and renders the result. Failures of
// any kind are rendered, never returned.
func (h *Handler) Submit(ctx context.Context, form Form) Outcome {
	h.mu.Lock()
	h.seq++
	id := h.seq
	h.display.Reset()
	h.mu.Unlock()

	res, err := h.post(ctx, form)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.seq != id {
		h.log.Debug("discarding stale response", zap.Uint64("submission", id))
		return Outcome{Stale: true}
	}

	if err != nil {
		h.log.Debug("classification request failed", zap.Error(err))
		h.display.ShowError(err.Error())
		return Outcome{Categoria: ErrorLabel, Resposta: err.Error(), Failed: true}
	}

	switch r := res.(type) {
	case Classified:
		h.display.SetResult(r.Categoria, r.Resposta)
		return Outcome{Categoria: r.Categoria, Resposta: r.Resposta}
	case Rejected:
		msg := r.Message()
		h.display.ShowError(msg)
		return Outcome{Categoria: ErrorLabel, Resposta: msg, Failed: true}
	}
	h.display.ShowError(errInvalidBody.Error())
	return Outcome{Categoria: ErrorLabel, Resposta: errInvalidBody.Error(), Failed: true}
}

func (h *Handler) post(ctx context.Context, form Form) (Result, error) {
	body, contentType, err := form.encode()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	h.log.Debug("classification response",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(b)))

	return decodeResult(resp.StatusCode, b)
}
