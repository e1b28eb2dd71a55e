package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartats-backend/internal/analyses"
	"smartats-backend/internal/shared/config"
)

func TestRouterHealthAndMetrics(t *testing.T) {
	svc := &analyses.Service{Repo: analyses.NewMemoryRepo()}
	r := NewRouter(RouterDeps{
		Config:          config.Config{CORSAllowOrigin: []string{"http://localhost:5173"}},
		AnalysisHandler: analyses.NewHandler(svc, 1<<20),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from health, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected health body: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from metrics, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "analysis_started_total") {
		t.Fatalf("unexpected metrics body: %s", w.Body.String())
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8080",
		"9000":  ":9000",
		":7000": ":7000",
	}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
