package rfp

import (
	"html/template"
	"sort"
	"strings"
	"time"
)

// previewBudget bounds the raw-text preview embedded in the HTML document.
const previewBudget = 16000

const pageCSS = `
body{font-family:-apple-system,BlinkMacSystemFont,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:24px;color:#0f172a}
.grid{display:grid;grid-template-columns:1fr;gap:16px}
@media(min-width:900px){.grid{grid-template-columns:2fr 1fr}}
.card{border:1px solid #e5e7eb;border-radius:16px;padding:20px;box-shadow:0 1px 2px rgba(0,0,0,.04);background:#fff}
.h1{font-size:22px;font-weight:800;margin:0 0 8px}
.h2{font-size:16px;font-weight:700;margin:0 0 12px}
.kv{display:grid;grid-template-columns:180px 1fr;gap:8px 16px;font-size:14px}
.kv div:nth-child(odd){color:#475569}
.badge{display:inline-block;border:1px solid #e5e7eb;border-radius:999px;padding:6px 10px;font-size:12px;background:#f8fafc}
code,pre{background:#f8fafc;border:1px solid #e5e7eb;border-radius:12px;padding:12px;white-space:pre-wrap;word-break:break-word}
ul{margin:8px 0 0 20px}
footer{margin-top:24px;color:#64748b;font-size:12px}
`

// summaryPage is the single self-contained document template. All dynamic
// values pass through html/template's contextual escaping.
var summaryPage = template.Must(template.New("summary").Parse(`<!doctype html>
<html lang="en"><head><meta charset="utf-8">
<title>Summary — {{.Filename}}</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>{{.CSS}}</style></head>
<body>
<div class="grid">
  <div class="card"><div class="h1">Executive Summary</div>{{if .Executive}}<p>{{.Executive}}</p>{{end}}{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}</div>
  <div class="card"><div class="h1">Key Fields</div><div class="kv">{{if .Fields}}{{range .Fields}}<div>{{.Key}}</div><div>{{.Value}}</div>{{end}}{{else}}<div>Info</div><div>Not detected</div>{{end}}</div></div>
  <div class="card"><div class="h1">Compliance Checklist</div><ul>{{range .Checklist}}<li><span class="badge">{{.Status}}</span> {{.Label}}</li>{{end}}</ul></div>
{{if .Links}}  <div class="card"><div class="h1">Download Links</div><ul>{{range .Links}}<li><a href="{{.Value}}">{{.Key}}</a></li>{{end}}</ul></div>
{{end}}  <div class="card"><div class="h1">Preview (first pages)</div><pre>{{.Preview}}</pre></div>
</div>
<footer>Generated locally on {{.Generated}}</footer>
</body></html>`))

type kv struct {
	Key   string
	Value string
}

type pageData struct {
	Filename  string
	CSS       template.CSS
	Executive string
	Bullets   []string
	Fields    []kv
	Checklist []ChecklistEntry
	Links     []kv
	Preview   string
	Generated string
}

// RenderHTML builds the heuristic-path summary document. Fields appear in
// canonical order, skipping empty values; an entirely empty field set renders
// a "Not detected" placeholder instead of an empty table.
func RenderHTML(filename string, fields FieldSet, bullets []string, checklist []ChecklistEntry, preview string) string {
	ordered := make([]kv, 0, len(FieldNames))
	for _, name := range FieldNames {
		if v := strings.TrimSpace(fields[name]); v != "" {
			ordered = append(ordered, kv{Key: name, Value: v})
		}
	}
	return render(pageData{
		Filename:  filename,
		Bullets:   bullets,
		Fields:    ordered,
		Checklist: checklist,
		Preview:   truncateRunes(preview, previewBudget),
	})
}

// RenderRichHTML builds the document from remote-model output. The open
// fields and links mappings render in sorted key order so output is
// deterministic for identical inputs.
func RenderRichHTML(filename, executiveSummary string, fields map[string]string, checklist map[string]bool, links map[string]string, preview string) string {
	entries := make([]ChecklistEntry, 0, len(checklist))
	for _, label := range sortedKeys(checklist) {
		status := "no"
		if checklist[label] {
			status = "yes"
		}
		entries = append(entries, ChecklistEntry{Label: label, Status: status})
	}

	return render(pageData{
		Filename:  filename,
		Executive: executiveSummary,
		Fields:    sortedKVs(fields),
		Checklist: entries,
		Links:     sortedKVs(links),
		Preview:   truncateRunes(preview, previewBudget),
	})
}

// PlaceholderHTML is the minimal document returned when a PDF cannot be read.
func PlaceholderHTML(filename, reason string) string {
	return render(pageData{
		Filename: filename,
		Bullets:  []string{"Could not read PDF: " + reason},
		Preview:  "",
	})
}

func render(data pageData) string {
	data.CSS = template.CSS(pageCSS)
	if data.Generated == "" {
		data.Generated = time.Now().Format("2006-01-02 15:04")
	}
	var sb strings.Builder
	if err := summaryPage.Execute(&sb, data); err != nil {
		return "<!doctype html><html><body><p>Summary unavailable.</p></body></html>"
	}
	return sb.String()
}

func sortedKVs(m map[string]string) []kv {
	out := make([]kv, 0, len(m))
	for _, k := range sortedKeys(m) {
		if v := strings.TrimSpace(m[k]); v != "" {
			out = append(out, kv{Key: k, Value: v})
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
