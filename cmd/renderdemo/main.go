// Command renderdemo renders the summary page from fixed sample data so the
// HTML layout can be inspected in a browser without a real solicitation.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/StrategicTender/summarizer-backend-v0.2/internal/rfp"
)

func main() {
	outPath := flag.String("out", "./out/sample_summary.html", "output path for the rendered page")
	flag.Parse()

	fields := rfp.ParseFields(sampleText)
	bullets := rfp.SummaryBullets(sampleText)
	checklist := rfp.Checklist(sampleText)

	page := rfp.RenderHTML("sample_rfp.pdf", fields, bullets, checklist, sampleText)
	if err := validatePage(page); err != nil {
		fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, []byte(page), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s\n", *outPath)
}

func validatePage(page string) error {
	for _, marker := range []string{
		"Executive Summary",
		"Key Fields",
		"Compliance Checklist",
		"Preview (first pages)",
	} {
		if !strings.Contains(page, marker) {
			return fmt.Errorf("missing section %q", marker)
		}
	}
	return nil
}

const sampleText = `Request for Proposal
Solicitation No. - 5000068598
Natural Resources Canada

1.2 Summary
The Crown is seeking janitorial services for three federal facilities located
in Ottawa. The contractor will supply all labour, materials and supervision
required to keep the premises in a clean and sanitary condition throughout the
contract period. Offers must comply with all mandatory requirements described
in this solicitation document in order to be considered responsive.

Address Enquiries to: - Jane Doe, jane.doe@nrcan-rncan.gc.ca, 613-555-0101
Solicitation Closes on – le 25 August 2025 at 2 p.m.
Submissions must be sent by email to the address above.
Term of Contract: two years
The Contractor shall maintain commercial general liability insurance.
NO SECURITY REQUIREMENTS apply to this solicitation.
`
