// Package summarize orchestrates a summarization request: text extraction,
// engine-path selection, heuristic or remote-model analysis, and response
// assembly. Only document-decode failure is fatal; every later stage
// degrades instead of failing.
package summarize

import (
	"context"
	"strings"
	"time"

	"github.com/StrategicTender/summarizer-backend-v0.2/internal/extract"
	"github.com/StrategicTender/summarizer-backend-v0.2/internal/llm"
	"github.com/StrategicTender/summarizer-backend-v0.2/internal/rfp"
	"github.com/StrategicTender/summarizer-backend-v0.2/internal/shared/config"
	"github.com/StrategicTender/summarizer-backend-v0.2/internal/shared/metrics"
	"github.com/StrategicTender/summarizer-backend-v0.2/internal/shared/telemetry"
	"github.com/StrategicTender/summarizer-backend-v0.2/internal/shared/util"
)

// Engine identifiers.
const (
	EngineHeuristic = "heuristic"
	EngineLLM       = "llm"
)

// Output modes.
const (
	ModeJSON = "json"
	ModeHTML = "html"
	ModeBoth = "both"
)

// Service runs summarization requests. LLM may be nil, in which case every
// request takes the heuristic path.
type Service struct {
	cfg     config.Config
	llm     llm.Client
	extract func(pdfBytes []byte, maxPages int) extract.RawDocument
}

// New constructs a Service.
func New(cfg config.Config, client llm.Client) *Service {
	return &Service{cfg: cfg, llm: client, extract: extract.Extract}
}

// Summarize processes one request end to end. pdfBytes are already decoded
// from base64 by the caller; input validation happens at the HTTP boundary.
func (s *Service) Summarize(ctx context.Context, filename string, pdfBytes []byte, req Request) Response {
	start := time.Now()
	metrics.IncSummarizeStarted()
	defer func() {
		metrics.ObserveSummarizeDurationMs(float64(time.Since(start).Milliseconds()))
	}()

	engine := s.resolveEngine(req.Engine)
	mode := resolveMode(req.Mode)
	docID := util.HashDocument(pdfBytes)

	doc := s.extract(pdfBytes, s.cfg.MaxPDFPages)
	if doc.PageCount == 0 {
		metrics.IncSummarizeFailed()
		telemetry.Error("summarize.unreadable", map[string]any{
			"filename": filename,
			"doc_id":   docID,
		})
		return Response{
			OK:          false,
			Error:       "could not read PDF: no extractable pages",
			Engine:      engine,
			SummaryHTML: rfp.PlaceholderHTML(filename, "no extractable pages"),
			ElapsedS:    elapsedSeconds(start),
		}
	}

	text := doc.Text()
	pages := doc.PageCount

	var resp Response
	rich := false
	if engine == EngineLLM && req.Rich && s.llm != nil {
		result := llm.BestEffort(ctx, s.llm, text, s.cfg.MaxLLMChars)
		if result.Renderable() {
			resp = s.assembleRich(filename, mode, req.Include, pages, text, result, start)
			rich = true
		} else {
			telemetry.Info("llm.fallback_heuristic", map[string]any{
				"filename": filename,
				"doc_id":   docID,
				"reason":   "empty or unrenderable result",
			})
		}
	}
	if !rich {
		resp = s.assembleHeuristic(filename, mode, req.Include, pages, text, engine, start)
	}

	metrics.IncSummarizeCompleted()
	telemetry.Info("summarize.done", map[string]any{
		"filename":   filename,
		"doc_id":     docID,
		"engine":     resp.Engine,
		"rich":       rich,
		"pages_used": pages,
		"elapsed_s":  resp.ElapsedS,
	})
	return resp
}

func (s *Service) assembleHeuristic(filename, mode string, include []string, pages int, text, engine string, start time.Time) Response {
	fields := rfp.ParseFields(text)
	bullets := rfp.SummaryBullets(text)
	checklist := rfp.Checklist(text)

	resp := Response{
		OK:        true,
		Engine:    engine,
		Mode:      mode,
		PagesUsed: &pages,
		ElapsedS:  elapsedSeconds(start),
	}
	if wantsData(mode) {
		resp.Fields = map[string]string(fields)
		resp.ExecutiveSummary = strings.Join(bullets, "\n")
		resp.ComplianceChecklist = checklistStatuses(checklist)
	}
	if wantsHTML(mode) {
		resp.SummaryHTML = rfp.RenderHTML(filename, fields, bullets, checklist, text)
	}
	return applyInclude(resp, include)
}

func (s *Service) assembleRich(filename, mode string, include []string, pages int, text string, result llm.Result, start time.Time) Response {
	resp := Response{
		OK:        true,
		Engine:    EngineLLM,
		Mode:      mode,
		PagesUsed: &pages,
		ElapsedS:  elapsedSeconds(start),
	}
	if wantsData(mode) {
		resp.Fields = result.Fields
		resp.ExecutiveSummary = result.ExecutiveSummary
		resp.ComplianceChecklist = checklistBools(result.ComplianceChecklist)
		resp.DownloadLinks = result.DownloadLinks
	}
	if wantsHTML(mode) {
		resp.SummaryHTML = rfp.RenderRichHTML(filename, result.ExecutiveSummary, result.Fields, result.ComplianceChecklist, result.DownloadLinks, text)
	}
	return applyInclude(resp, include)
}

func (s *Service) resolveEngine(requested string) string {
	engine := strings.ToLower(strings.TrimSpace(requested))
	if engine == "" {
		engine = s.cfg.DefaultEngine
	}
	if engine == EngineLLM || engine == "openai" {
		return EngineLLM
	}
	return EngineHeuristic
}

func resolveMode(requested string) string {
	switch strings.ToLower(strings.TrimSpace(requested)) {
	case ModeHTML:
		return ModeHTML
	case ModeBoth:
		return ModeBoth
	case "":
		return ModeJSON
	default:
		return ModeJSON
	}
}

func wantsData(mode string) bool { return mode == ModeJSON || mode == ModeBoth }
func wantsHTML(mode string) bool { return mode == ModeHTML || mode == ModeBoth }

func checklistStatuses(entries []rfp.ChecklistEntry) map[string]any {
	out := make(map[string]any, len(entries))
	for _, e := range entries {
		out[e.Label] = e.Status
	}
	return out
}

func checklistBools(items map[string]bool) map[string]any {
	out := make(map[string]any, len(items))
	for k, v := range items {
		out[k] = v
	}
	return out
}

// applyInclude filters response sections to the requested subset. An empty
// include list keeps everything the mode produced.
func applyInclude(resp Response, include []string) Response {
	if len(include) == 0 {
		return resp
	}
	keep := make(map[string]bool, len(include))
	for _, name := range include {
		keep[strings.ToLower(strings.TrimSpace(name))] = true
	}
	if !keep["fields"] {
		resp.Fields = nil
	}
	if !keep["executive_summary"] {
		resp.ExecutiveSummary = ""
	}
	if !keep["compliance_checklist"] {
		resp.ComplianceChecklist = nil
	}
	if !keep["download_links"] {
		resp.DownloadLinks = nil
	}
	if !keep["summary_html"] {
		resp.SummaryHTML = ""
	}
	return resp
}

func elapsedSeconds(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1e6
}
