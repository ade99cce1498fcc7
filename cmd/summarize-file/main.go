// Command summarize-file runs the summarization pipeline against a local PDF
// without going through HTTP. Useful for checking extraction and field rules
// against real solicitation documents.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/StrategicTender/summarizer-backend-v0.2/internal/llm"
	openai "github.com/StrategicTender/summarizer-backend-v0.2/internal/llm/openai"
	"github.com/StrategicTender/summarizer-backend-v0.2/internal/shared/config"
	"github.com/StrategicTender/summarizer-backend-v0.2/internal/summarize"
)

func main() {
	cfg := config.Load()

	pdfPath := flag.String("pdf", "", "Path to the PDF to summarize")
	engine := flag.String("engine", cfg.DefaultEngine, "Summary engine (heuristic or llm)")
	mode := flag.String("mode", "both", "Output mode (json, html or both)")
	rich := flag.Bool("rich", false, "Request the rich model-backed summary")
	outPath := flag.String("out", "", "Path to write the rendered HTML (optional)")
	flag.Parse()

	if strings.TrimSpace(*pdfPath) == "" {
		exitErr("pdf path is required")
	}

	pdfBytes, err := os.ReadFile(*pdfPath)
	if err != nil {
		exitErr(fmt.Sprintf("read pdf: %v", err))
	}

	var client llm.Client
	if cfg.LLMEnabled() {
		c, err := openai.NewClient(cfg.OpenAIKey, cfg.LLMModel, cfg.OpenAIBaseURL)
		if err != nil {
			exitErr(fmt.Sprintf("llm client: %v", err))
		}
		client = c
	}

	svc := summarize.New(cfg, client)
	resp := svc.Summarize(context.Background(), filepath.Base(*pdfPath), pdfBytes, summarize.Request{
		Engine: *engine,
		Mode:   *mode,
		Rich:   *rich,
	})

	if strings.TrimSpace(*outPath) != "" && resp.SummaryHTML != "" {
		if err := os.WriteFile(*outPath, []byte(resp.SummaryHTML), 0o644); err != nil {
			exitErr(fmt.Sprintf("write html: %v", err))
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", *outPath)
		resp.SummaryHTML = ""
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		exitErr(fmt.Sprintf("encode output: %v", err))
	}
	if !resp.OK {
		os.Exit(1)
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
