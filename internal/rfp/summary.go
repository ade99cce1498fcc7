package rfp

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// Seed budget when no recognizable section heading exists.
	summarySeedBudget = 2500
	maxBullets        = 8
	minBulletLen      = 12
	maxBulletLen      = 180
)

// FallbackBullet is emitted when no line qualifies as a summary bullet.
const FallbackBullet = "High-level summary not confidently extracted — manual review recommended."

// reSummarySection captures text following a summary-like heading.
var reSummarySection = regexp.MustCompile(`(?im)(?:\b1\.2\s*Summary\b|^Summary\b|^Introduction\b|^Scope\b)[^\n]*\n([\s\S]{200,1000})`)

// SummaryBullets derives an executive-summary bullet list from raw text.
// Candidate lines come from up to two summary-like sections, or from the
// leading part of the document when no heading is present. The result is
// never empty: a single low-confidence sentinel line stands in when nothing
// qualifies.
func SummaryBullets(text string) []string {
	seed := summarySeed(text)

	bullets := make([]string, 0, maxBullets)
	for _, line := range strings.Split(seed, "\n") {
		s := strings.Trim(line, " •-\t")
		if n := utf8.RuneCountInString(s); n >= minBulletLen && n <= maxBulletLen {
			bullets = append(bullets, s)
		}
		if len(bullets) >= maxBullets {
			break
		}
	}
	if len(bullets) == 0 {
		return []string{FallbackBullet}
	}
	return bullets
}

func summarySeed(text string) string {
	matches := reSummarySection.FindAllStringSubmatch(text, 2)
	if len(matches) == 0 {
		return truncateRunes(text, summarySeedBudget)
	}
	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, m[1])
	}
	return strings.Join(blocks, "\n")
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}

// ChecklistEntry is a compliance question with a categorical answer.
type ChecklistEntry struct {
	Label  string `json:"label"`
	Status string `json:"status"`
}

// StatusUnknown marks a checklist item with no signal either way.
const StatusUnknown = "—"

// checklistItem resolves one checklist label through an ordered rule chain;
// the first matching rule wins and the default stands in otherwise.
type checklistItem struct {
	label    string
	rules    []categoryRule
	fallback string
}

// Checklist patterns run against lower-cased text.
var checklistItems = []checklistItem{
	{
		label: "Mandatory Site Visit",
		rules: []categoryRule{
			{regexp.MustCompile(`mandatory\s+site\s+visit`), "yes"},
		},
		fallback: "no",
	},
	{
		label: "Security Clearance",
		rules: []categoryRule{
			// Explicit waiver outranks generic security terms.
			{regexp.MustCompile(`no\s+security\s+requirements`), "no"},
			{regexp.MustCompile(`security\s+requirement|reliability|secret\s*clearance`), "yes"},
		},
		fallback: StatusUnknown,
	},
	{
		label: "Insurance",
		rules: []categoryRule{
			{regexp.MustCompile(`insurance\s*-\s*no\s*specific\s*requirement`), "no specific requirement"},
			{regexp.MustCompile(`\binsurance\b`), "yes"},
		},
		fallback: StatusUnknown,
	},
	{
		label: "Indigenous Procurement",
		rules: []categoryRule{
			{regexp.MustCompile(`indigenous|aboriginal|set-?aside`), "yes"},
		},
		fallback: StatusUnknown,
	},
	{
		label: "French/Bilingual Content",
		rules: []categoryRule{
			{regexp.MustCompile(`\bfran[cç]ais\b|french`), "yes"},
		},
		fallback: StatusUnknown,
	},
	{
		label: "SOW Attached",
		rules: []categoryRule{
			{regexp.MustCompile(`statement of work|annex\s*[“"']?a[”"']?`), "yes"},
		},
		fallback: StatusUnknown,
	},
	{
		label: "Evaluation Method",
		rules: []categoryRule{
			{regexp.MustCompile(`evaluation\s+procedures|rated\s*criteria|mandatory\s+requirements`), "yes"},
		},
		fallback: StatusUnknown,
	},
	{
		// Keeps the historical literal answer rather than a yes/no.
		label: "Form of Contract",
		rules: []categoryRule{
			{regexp.MustCompile(`resulting\s+contract\s+clauses`), "contract"},
		},
		fallback: StatusUnknown,
	},
}

// Checklist evaluates the fixed compliance items against the text. Order of
// entries is fixed and significant for rendering.
func Checklist(text string) []ChecklistEntry {
	low := strings.ToLower(text)
	entries := make([]ChecklistEntry, 0, len(checklistItems))
	for _, item := range checklistItems {
		status := item.fallback
		for _, rule := range item.rules {
			if rule.re.MatchString(low) {
				status = rule.result
				break
			}
		}
		entries = append(entries, ChecklistEntry{Label: item.label, Status: status})
	}
	return entries
}
