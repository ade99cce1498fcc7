package summarize

// Request is the summarization request body. Content is mandatory base64 PDF
// bytes; a data-URL prefix is tolerated and stripped. Engine and Mode fall
// back to process configuration when absent.
type Request struct {
	Filename string   `json:"filename"`
	Content  string   `json:"content"`
	Engine   string   `json:"engine"`
	Mode     string   `json:"mode"`
	Include  []string `json:"include"`
	Rich     bool     `json:"rich"`
}

// Response is the summarization result payload. On failure only OK, Error,
// Engine and SummaryHTML (a minimal placeholder) are meaningful.
type Response struct {
	OK                  bool              `json:"ok"`
	Error               string            `json:"error,omitempty"`
	Engine              string            `json:"engine"`
	Mode                string            `json:"mode,omitempty"`
	PagesUsed           *int              `json:"pages_used"`
	Fields              map[string]string `json:"fields,omitempty"`
	ExecutiveSummary    string            `json:"executive_summary,omitempty"`
	ComplianceChecklist map[string]any    `json:"compliance_checklist,omitempty"`
	DownloadLinks       map[string]string `json:"download_links,omitempty"`
	SummaryHTML         string            `json:"summary_html,omitempty"`
	ElapsedS            float64           `json:"elapsed_s"`
}
