package llm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// looseResult mirrors the wire shape with open-typed sections, since models
// routinely emit numbers or yes/no strings where the schema asks for strings
// and booleans.
type looseResult struct {
	ExecutiveSummary    string         `json:"executive_summary"`
	Fields              map[string]any `json:"fields"`
	ComplianceChecklist map[string]any `json:"compliance_checklist"`
	DownloadLinks       map[string]any `json:"download_links"`
}

// DecodeResult parses model output into a Result. The payload is isolated
// with ExtractJSON first, then section values are coerced to their expected
// types; values that cannot be coerced are dropped rather than failing the
// whole decode.
func DecodeResult(raw string) (Result, error) {
	payload, err := ExtractJSON(raw)
	if err != nil {
		return Result{}, err
	}

	var loose looseResult
	if err := json.Unmarshal([]byte(payload), &loose); err != nil {
		return Result{}, fmt.Errorf("llm: decode result: %w", err)
	}

	out := Result{
		ExecutiveSummary: strings.TrimSpace(loose.ExecutiveSummary),
	}
	if len(loose.Fields) > 0 {
		out.Fields = make(map[string]string, len(loose.Fields))
		for k, v := range loose.Fields {
			if s, ok := coerceString(v); ok {
				out.Fields[k] = s
			}
		}
	}
	if len(loose.ComplianceChecklist) > 0 {
		out.ComplianceChecklist = make(map[string]bool, len(loose.ComplianceChecklist))
		for k, v := range loose.ComplianceChecklist {
			if b, ok := coerceBool(v); ok {
				out.ComplianceChecklist[k] = b
			}
		}
	}
	if len(loose.DownloadLinks) > 0 {
		out.DownloadLinks = make(map[string]string, len(loose.DownloadLinks))
		for k, v := range loose.DownloadLinks {
			if s, ok := coerceString(v); ok {
				out.DownloadLinks[k] = s
			}
		}
	}
	return out, nil
}

func coerceString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		return s, s != ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

func coerceBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "yes", "true", "y":
			return true, true
		case "no", "false", "n":
			return false, true
		}
	}
	return false, false
}
