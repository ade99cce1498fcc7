// Package rfp turns raw solicitation text into structured procurement data:
// a canonical field set, an executive-summary bullet list, and a compliance
// checklist. Everything here is pure and deterministic; extraction misses
// degrade to empty values instead of errors.
package rfp

import (
	"regexp"
	"strings"
)

// FieldNames lists the canonical extraction fields in display order.
var FieldNames = []string{
	"RFP #",
	"Buyer",
	"Contact Email",
	"Contact Name",
	"Closing Date",
	"Closing Time",
	"Submission Method",
	"Delivery",
	"Location",
	"Term of Contract",
	"Insurance",
	"Security Clearance",
}

// FieldSet maps every canonical field name to its extracted value. Unmatched
// fields are present with an empty string, never omitted.
type FieldSet map[string]string

// Empty reports whether no field carries a value.
func (f FieldSet) Empty() bool {
	for _, v := range f {
		if v != "" {
			return false
		}
	}
	return true
}

var (
	reRFPNumber   = regexp.MustCompile(`(?im)(?:Solicitation\s*No\.\s*[-–]\s*|RFP\s*#?\s*|NRCan[-\s#:]*)\s*([A-Za-z]*-?\d{6,})`)
	reNRCanNumber = regexp.MustCompile(`(?i)\b(NRCan-\d{6,})\b`)

	reBuyer = regexp.MustCompile(`(?i)(Natural Resources Canada|NRCan|Public Works and Government Services Canada|Parks Canada|Government of Canada)`)

	// Contact details are looked up inside a bounded window after a labeled
	// heading first; only when that window yields nothing does the rule fall
	// back to the whole document.
	reEnquiriesBlock   = regexp.MustCompile(`(?i)(Address\s+Enquiries\s+to[:\-\s]*\n?.{0,120})`)
	reAuthorityBlock   = regexp.MustCompile(`(?i)(Contracting\s*Authority[:\-\s]*\n?.{0,120})`)
	reEmail            = regexp.MustCompile(`(?i)([A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,})`)
	reContactName      = regexp.MustCompile(`(?i)(?:Address\s+Enquiries\s+to[:\-\s]*|Contracting\s*Authority[:\-\s]*)([^\n@]+)`)

	// Closing sentence marker, bilingual.
	reClosingLine = regexp.MustCompile(`(?i)(?:Solicitation\s+Closes|L['’]invitation\s+prend\s+fin)[^\n]*`)
	reDate        = regexp.MustCompile(`(?i)((?:\d{1,2}\s*(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sept?|Oct|Nov|Dec)[a-z]*\s*,?\s*\d{4})|(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sept?|Oct|Nov|Dec)[a-z]*\s+\d{1,2}\s*,?\s*\d{4})|(?:\d{4}-\d{2}-\d{2})|(?:\d{1,2}/\d{1,2}/\d{2,4}))`)
	reTime        = regexp.MustCompile(`(?i)(\d{1,2}\s*(?::\s*\d{2})?\s*(?:a\.?m\.?|p\.?m\.?|H))`)

	reDelivery = regexp.MustCompile(`(?im)(?:Destination|Delivery(?:\s*Date)?)[^\n]*:\s*([^\n]+)`)
	reLocation = regexp.MustCompile(`(?im)(?:Location|Work Location|Place of Work)[^\n]*:\s*([^\n]+)`)
	reTerm     = regexp.MustCompile(`(?im)(?:Term\s*of\s*Contract|Contract\s*Term)[^\n]*:\s*([^\n]+)`)
)

// categoryRule resolves a categorical field: the first matching pattern wins.
type categoryRule struct {
	re     *regexp.Regexp
	result string
}

var submissionRules = []categoryRule{
	{regexp.MustCompile(`(?i)\bCPC\s+Connect\b`), "CPC Connect (Canada Post)"},
	{regexp.MustCompile(`(?i)\bemail|courriel`), "Email"},
	{regexp.MustCompile(`(?i)Bid Receiving Unit|Mailroom`), "Physical delivery / Mailroom"},
}

var insuranceRules = []categoryRule{
	{regexp.MustCompile(`(?i)INSURANCE\s*[-–]\s*NO\s+SPECIFIC\s+REQUIREMENT`), "No specific requirement"},
	{regexp.MustCompile(`(?i)\binsurance\b`), "Insurance requirements apply"},
}

var securityRules = []categoryRule{
	{regexp.MustCompile(`(?i)NO\s+SECURITY\s+REQUIREMENTS`), "None"},
	{regexp.MustCompile(`(?i)security\s+requirement|reliability|secret\s*clearance`), "Required"},
}

// ParseFields applies the ordered rule set to raw solicitation text. Every
// canonical field is present in the result; a rule that finds nothing yields
// an empty string for its field only.
func ParseFields(text string) FieldSet {
	fields := make(FieldSet, len(FieldNames))
	for _, name := range FieldNames {
		fields[name] = ""
	}

	fields["RFP #"] = firstNonEmpty(
		firstGroup(reRFPNumber, text),
		firstGroup(reNRCanNumber, text),
	)
	fields["Buyer"] = firstGroup(reBuyer, text)

	contactScope := firstNonEmpty(
		firstGroup(reEnquiriesBlock, text),
		firstGroup(reAuthorityBlock, text),
	)
	// The scoped lookup wins; an empty scope result falls through to the
	// whole document so boilerplate emails are only a last resort.
	fields["Contact Email"] = firstNonEmpty(
		firstGroup(reEmail, contactScope),
		firstGroup(reEmail, text),
	)
	fields["Contact Name"] = firstGroup(reContactName, text)

	closingLine := reClosingLine.FindString(text)
	fields["Closing Date"] = scopedGroup(reDate, closingLine, text)
	fields["Closing Time"] = scopedGroup(reTime, closingLine, text)

	fields["Submission Method"] = firstCategory(submissionRules, text)

	fields["Delivery"] = firstGroup(reDelivery, text)
	fields["Location"] = firstGroup(reLocation, text)
	fields["Term of Contract"] = firstGroup(reTerm, text)

	fields["Insurance"] = firstCategory(insuranceRules, text)
	fields["Security Clearance"] = firstCategory(securityRules, text)

	return fields
}

// firstGroup returns the trimmed first capture group of the first match.
func firstGroup(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// scopedGroup searches the scope first and falls back to the full text when
// the scope is empty.
func scopedGroup(re *regexp.Regexp, scope, full string) string {
	if scope != "" {
		return firstGroup(re, scope)
	}
	return firstGroup(re, full)
}

// firstCategory evaluates rules in written order with first-match-wins
// semantics; no match yields the empty "no signal" value.
func firstCategory(rules []categoryRule, text string) string {
	for _, rule := range rules {
		if rule.re.MatchString(text) {
			return rule.result
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
