package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-portfolio/pkg/contact"
	"github.com/goliatone/go-portfolio/pkg/form"
)

const maxFormBytes = 64 << 10

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Handler serves the portfolio page and the form post that backs it.
type Handler struct {
	opts   Options
	engine *Engine
}

// New builds a Handler. A Submitter is required.
func New(fns ...OptionFn) (*Handler, error) {
	return NewWithOptions(NewOptions(fns...))
}

// NewWithOptions builds a Handler from a pre-constructed Options value.
func NewWithOptions(opts Options) (*Handler, error) {
	opts = NewOptions(func(o *Options) { *o = opts })
	if opts.Submitter == nil {
		return nil, errors.New("site: submitter is required")
	}
	engine, err := NewEngine(opts.Templates, TemplatesFS())
	if err != nil {
		return nil, err
	}
	return &Handler{opts: opts, engine: engine}, nil
}

// RegisterRoutes mounts the page, the form post and the health probe on mux.
func (h *Handler) RegisterRoutes(mux Mux) error {
	if mux == nil {
		return fmt.Errorf("site: missing mux")
	}
	mux.Handle("/{$}", http.HandlerFunc(h.Index))
	mux.Handle(h.formPath(), http.HandlerFunc(h.Contact))
	mux.Handle(DefaultHealthPath, http.HandlerFunc(Health))
	return nil
}

// Index renders the page with an empty form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	ctrl := form.New(h.opts.Submitter)
	defer ctrl.Close()
	h.render(w, http.StatusOK, ctrl.Snapshot())
}

// Contact accepts the urlencoded form, runs it through a fresh controller and
// re-renders the page with the resulting state.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.opts.Logger.Debug("contact form unreadable", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	capture := &capturingSubmitter{next: h.opts.Submitter}
	ctrl := form.New(capture)
	defer ctrl.Close()

	for _, field := range contact.Fields() {
		ctrl.UpdateField(field, r.PostForm.Get(string(field)))
	}

	err := ctrl.Submit(r.Context())
	status := http.StatusOK
	switch {
	case errors.Is(err, form.ErrInvalid):
		status = http.StatusBadRequest
	case err != nil:
		h.opts.Logger.Error("contact form delivery failed", zap.Error(err))
		status = http.StatusInternalServerError
	default:
		status = capture.Outcome().StatusCode()
	}

	h.render(w, status, ctrl.Snapshot())
}

// Health answers liveness probes.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) render(w http.ResponseWriter, status int, snap form.Snapshot) {
	var buf strings.Builder
	page := NewPage(h.opts.Profile, h.formPath(), snap)
	if err := h.engine.Render(&buf, "index", page); err != nil {
		h.opts.Logger.Error("render portfolio page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(buf.String()))
}

func (h *Handler) formPath() string {
	path := strings.TrimSpace(h.opts.FormPath)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// capturingSubmitter remembers the last outcome so the handler can pick the
// response status.
type capturingSubmitter struct {
	next form.Submitter

	mu      sync.Mutex
	outcome contact.Outcome
}

func (c *capturingSubmitter) Submit(ctx context.Context, payload contact.Submission) (contact.Outcome, error) {
	outcome, err := c.next.Submit(ctx, payload)
	c.mu.Lock()
	c.outcome = outcome
	c.mu.Unlock()
	return outcome, err
}

func (c *capturingSubmitter) Outcome() contact.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcome
}
