package contact

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMountPath_JoinsBasePath(t *testing.T) {
	if got := MountPath(""); got != "/api/contact" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("/site"); got != "/site/api/contact" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("site/", WithRoutePath("contact/")); got != "/site/contact" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := DocumentPath("/site"); got != "/site/api/contact/openapi.json" {
		t.Fatalf("unexpected document path: %q", got)
	}
}

func TestRegisterRoutes_RegistersHandlers(t *testing.T) {
	mux := http.NewServeMux()
	pattern, err := RegisterRoutes(mux, "", WithRecorder(&captureRecorder{}))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/api/contact" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}

	body := `{"name":"Jo","email":"jo@example.com","subject":"Hi","message":"This message is long enough."}`
	req := httptest.NewRequest(http.MethodPost, pattern, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, pattern+"/openapi.json", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected document status 200, got %d", rec.Code)
	}
}

func TestRegisterRoutes_MissingMux(t *testing.T) {
	if _, err := RegisterRoutes(nil, ""); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}
