package contact

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	pkgcontact "github.com/goliatone/go-portfolio/pkg/contact"
)

// Handler builds a net/http handler with default options plus any overrides.
// It is an alias of NewHandler to match the recommended component API surface.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options value.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return serviceHandler(ServiceWithOptions(opts), opts)
}

// ServiceHandler exposes an existing Service over HTTP so callers can share
// one Service between the endpoint and other surfaces.
func ServiceHandler(svc *Service) http.Handler {
	if svc == nil {
		svc = NewService()
	}
	return serviceHandler(svc, svc.opts)
}

func serviceHandler(svc *Service, opts Options) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		defer func() {
			if rec := recover(); rec != nil {
				opts.Logger.Error("contact handler panicked", zap.Any("panic", rec))
				writeOutcome(w, opts.Logger, pkgcontact.Failed())
			}
		}()

		sub, err := decodeSubmission(w, r, opts.MaxBodyBytes)
		if err != nil {
			opts.Logger.Warn("contact payload not decoded", zap.Error(err))
			writeOutcome(w, opts.Logger, pkgcontact.Failed())
			return
		}

		writeOutcome(w, opts.Logger, svc.Submit(r.Context(), sub))
	})
}

// decodeSubmission accepts exactly one JSON object; null, other values and
// trailing data are errors.
func decodeSubmission(w http.ResponseWriter, r *http.Request, limit int64) (pkgcontact.Submission, error) {
	if r.Body == nil {
		return pkgcontact.Submission{}, errors.New("contact: empty body")
	}
	body := http.MaxBytesReader(w, r.Body, limit)
	defer body.Close()

	dec := json.NewDecoder(body)
	var sub *pkgcontact.Submission
	if err := dec.Decode(&sub); err != nil {
		return pkgcontact.Submission{}, fmt.Errorf("contact: decode payload: %w", err)
	}
	if sub == nil {
		return pkgcontact.Submission{}, errors.New("contact: payload is null")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return pkgcontact.Submission{}, errors.New("contact: trailing data after payload")
	}
	return *sub, nil
}

func writeOutcome(w http.ResponseWriter, logger *zap.Logger, outcome pkgcontact.Outcome) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(outcome.StatusCode())

	if err := json.NewEncoder(w).Encode(outcome.Response()); err != nil {
		logger.Warn("contact response not written", zap.Error(err))
	}
}
