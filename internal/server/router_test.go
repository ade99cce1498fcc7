package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/StrategicTender/summarizer-backend-v0.2/internal/shared/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:          "8080",
		DefaultEngine: "heuristic",
		MaxPDFPages:   25,
		MaxLLMChars:   100000,
		Revision:      "test-rev",
	}
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthRoute(t *testing.T) {
	r := NewRouter(testConfig())
	w := get(t, r, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "ok" {
		t.Fatalf("body = %q, want ok", w.Body.String())
	}
}

func TestRoutesListing(t *testing.T) {
	r := NewRouter(testConfig())
	w := get(t, r, "/routes")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Routes []string `json:"routes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	found := false
	for _, route := range body.Routes {
		if route == "POST /ai/v2/summarize" {
			found = true
		}
	}
	if !found {
		t.Fatalf("summarize route missing from %v", body.Routes)
	}
	sorted := append([]string(nil), body.Routes...)
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1] > sorted[i] {
			t.Fatalf("routes not sorted: %v", body.Routes)
		}
	}
}

func TestWhoamiRoute(t *testing.T) {
	r := NewRouter(testConfig())
	w := get(t, r, "/whoami")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["revision"] != "test-rev" {
		t.Fatalf("revision = %v", body["revision"])
	}
	if body["llm"] != false {
		t.Fatalf("llm should be disabled without credentials")
	}
}

func TestRateLimitApplied(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPM = 1
	r := NewRouter(cfg)

	if w := get(t, r, "/health"); w.Code != http.StatusOK {
		t.Fatalf("first request status = %d", w.Code)
	}
	w := get(t, r, "/health")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
	if !strings.Contains(w.Body.String(), "rate_limited") {
		t.Fatalf("body = %q", w.Body.String())
	}
}

func TestAddr(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ":8080"},
		{"9000", ":9000"},
		{":7000", ":7000"},
	}
	for _, tc := range cases {
		if got := Addr(tc.in); got != tc.want {
			t.Fatalf("Addr(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
