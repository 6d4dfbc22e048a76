package contact

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// documentPath is the path the embedded document describes.
const documentPath = "/api/contact"

// LoadDocument parses and validates the embedded OpenAPI description.
func LoadDocument(ctx context.Context) (*openapi3.T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("contact: load openapi document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("contact: validate openapi document: %w", err)
	}
	return doc, nil
}

// DocumentFor returns the description with the endpoint moved to routePath.
func DocumentFor(ctx context.Context, routePath string) (*openapi3.T, error) {
	doc, err := LoadDocument(ctx)
	if err != nil {
		return nil, err
	}
	route := mountPath("", routePath)
	if route == documentPath || doc.Paths == nil {
		return doc, nil
	}
	item := doc.Paths.Value(documentPath)
	if item == nil {
		return nil, fmt.Errorf("contact: openapi document is missing %s", documentPath)
	}
	doc.Paths.Delete(documentPath)
	doc.Paths.Set(route, item)
	return doc, nil
}

// DocumentHandler serves the OpenAPI description as JSON on GET and HEAD.
func DocumentHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)

	doc, err := DocumentFor(context.Background(), opts.RoutePath)
	var payload []byte
	if err == nil {
		payload, err = json.Marshal(doc)
	}
	if err != nil {
		opts.Logger.Error("contact openapi document unavailable", zap.Error(err))
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if payload == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(payload)
	})
}
