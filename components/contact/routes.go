package contact

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath returns the full mount path for the endpoint under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return mountPath(basePath, opts.RoutePath)
}

// DocumentPath returns where the OpenAPI description is mounted.
func DocumentPath(basePath string, fns ...OptionFn) string {
	return documentPattern(MountPath(basePath, fns...))
}

// RegisterRoutes registers the endpoint and its OpenAPI description under
// basePath on mux.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	opts := NewOptions(fns...)
	return RegisterRoutesWithOptions(mux, basePath, opts)
}

// RegisterRoutesWithOptions registers handlers under basePath using a pre-built Options value.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (string, error) {
	return RegisterService(mux, basePath, ServiceWithOptions(opts))
}

// RegisterService mounts an existing Service.
func RegisterService(mux Mux, basePath string, svc *Service) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("contact: missing mux")
	}
	if svc == nil {
		return "", fmt.Errorf("contact: missing service")
	}
	pattern := mountPath(basePath, svc.opts.RoutePath)
	mux.Handle(pattern, ServiceHandler(svc))
	mux.Handle(documentPattern(pattern), DocumentHandler(func(o *Options) {
		*o = svc.opts
		o.RoutePath = pattern
	}))
	return pattern, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}
	routePath = strings.TrimRight(routePath, "/")
	if routePath == "" {
		routePath = "/"
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}

func documentPattern(pattern string) string {
	return strings.TrimRight(pattern, "/") + "/openapi.json"
}
