package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/StrategicTender/summarizer-backend-v0.2/internal/llm"
)

func chatBody(t *testing.T, content string) string {
	t.Helper()
	resp := map[string]any{
		"id":    "chatcmpl-test",
		"model": "gpt-4o-mini",
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal chat body: %v", err)
	}
	return string(raw)
}

const resultJSON = `{"executive_summary":"Snow removal services for two sites.","fields":{"Buyer":"NRCan"},"compliance_checklist":{"Site Visit":true},"download_links":{}}`

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	client, err := NewClient("sk-test", "gpt-4o-mini", url)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestSummarizeRFPPrimaryShape(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if _, ok := req["response_format"]; !ok {
			t.Error("expected response_format on primary shape")
		}
		io.WriteString(w, chatBody(t, resultJSON))
	}))
	defer srv.Close()

	result, err := newTestClient(t, srv.URL).SummarizeRFP(context.Background(), "document text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single call, got %d", calls)
	}
	if result.ExecutiveSummary != "Snow removal services for two sites." {
		t.Fatalf("unexpected summary: %q", result.ExecutiveSummary)
	}
	if !result.ComplianceChecklist["Site Visit"] {
		t.Fatal("expected checklist entry")
	}
}

func TestSummarizeRFPFallsBackToPlainShape(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		body, _ := io.ReadAll(r.Body)
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if strings.Contains(string(body), "response_format") {
			t.Error("fallback shape must not request structured output")
		}
		io.WriteString(w, chatBody(t, "```json\n"+resultJSON+"\n```"))
	}))
	defer srv.Close()

	result, err := newTestClient(t, srv.URL).SummarizeRFP(context.Background(), "document text")
	if err != nil {
		t.Fatalf("expected fallback success, got error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected exactly 2 calls, got %d", calls)
	}
	if result.Fields["Buyer"] != "NRCan" {
		t.Fatalf("expected fallback result parsed, got %+v", result)
	}
}

func TestSummarizeRFPNonJSONContentTriggersFallback(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			io.WriteString(w, chatBody(t, "Sorry, I cannot produce JSON."))
			return
		}
		io.WriteString(w, chatBody(t, resultJSON))
	}))
	defer srv.Close()

	result, err := newTestClient(t, srv.URL).SummarizeRFP(context.Background(), "document text")
	if err != nil {
		t.Fatalf("expected fallback success, got error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected exactly 2 calls, got %d", calls)
	}
	if result.ExecutiveSummary == "" {
		t.Fatal("expected parsed summary from fallback")
	}
}

func TestSummarizeRFPBothShapesFail(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.SummarizeRFP(context.Background(), "document text")
	if err == nil {
		t.Fatal("expected error after both shapes fail")
	}
	if calls != 2 {
		t.Fatalf("expected exactly 2 calls, got %d", calls)
	}

	// At the boundary the failure collapses to an empty result.
	result := llm.BestEffort(context.Background(), client, "document text", 1000)
	if !result.Empty() {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "gpt-4o-mini", ""); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := NewClient("sk-test", "", ""); err == nil {
		t.Fatal("expected error for missing model")
	}
	client, err := NewClient("sk-test", "gpt-4o-mini", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.baseURL != defaultBaseURL {
		t.Fatalf("expected default base url, got %q", client.baseURL)
	}
}
