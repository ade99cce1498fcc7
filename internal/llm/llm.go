// Package llm defines the remote summarization boundary: a provider-agnostic
// client interface, the loosely-typed result shape remote models return, and
// a best-effort wrapper that never fails past this boundary.
package llm

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/StrategicTender/summarizer-backend-v0.2/internal/shared/telemetry"
)

// Result is the structured object a remote summarization call produces. The
// fields and download_links sections are open-vocabulary mappings; they are
// never merged into the canonical heuristic field set.
type Result struct {
	ExecutiveSummary    string            `json:"executive_summary"`
	Fields              map[string]string `json:"fields"`
	ComplianceChecklist map[string]bool   `json:"compliance_checklist"`
	DownloadLinks       map[string]string `json:"download_links"`
}

// Empty reports whether every section is absent.
func (r Result) Empty() bool {
	return r.ExecutiveSummary == "" &&
		len(r.Fields) == 0 &&
		len(r.ComplianceChecklist) == 0 &&
		len(r.DownloadLinks) == 0
}

// Renderable reports whether the result carries enough content for the rich
// rendering path: a non-empty executive summary, checklist, or links.
func (r Result) Renderable() bool {
	return r.ExecutiveSummary != "" ||
		len(r.ComplianceChecklist) > 0 ||
		len(r.DownloadLinks) > 0
}

// Client abstracts remote summarization providers.
type Client interface {
	SummarizeRFP(ctx context.Context, text string) (Result, error)
}

// BestEffort truncates text to maxChars and runs the remote call, collapsing
// any failure to an empty Result. The client is expected to make exactly one
// fallback attempt with an alternate request shape before reporting failure.
func BestEffort(ctx context.Context, client Client, text string, maxChars int) Result {
	if client == nil {
		return Result{}
	}
	if maxChars > 0 && utf8.RuneCountInString(text) > maxChars {
		text = string([]rune(text)[:maxChars])
	}
	result, err := client.SummarizeRFP(ctx, text)
	if err != nil {
		telemetry.Error("llm.summarize_failed", map[string]any{
			"error": err.Error(),
			"chars": len(text),
		})
		return Result{}
	}
	return result
}

// ErrEmptyResponse signals a response with no usable JSON payload.
var ErrEmptyResponse = errors.New("llm: empty response")

// ExtractJSON leniently isolates a JSON object from model output: markdown
// code fences are stripped and everything outside the outermost braces is
// discarded.
func ExtractJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", ErrEmptyResponse
	}
	return s[start : end+1], nil
}
