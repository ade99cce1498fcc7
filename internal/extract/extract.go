package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	pdfcpuapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/StrategicTender/summarizer-backend-v0.2/internal/shared/util"
)

// RawDocument is the immutable result of text extraction: per-page text in
// page order plus the number of pages actually processed.
type RawDocument struct {
	Pages     []string
	PageCount int
}

// Text joins all page texts with blank lines, matching the order of Pages.
func (d RawDocument) Text() string {
	return strings.Join(d.Pages, "\n\n")
}

// Empty reports whether extraction produced no usable text.
func (d RawDocument) Empty() bool {
	return d.PageCount == 0 || strings.TrimSpace(d.Text()) == ""
}

// Extract pulls text from the first maxPages pages of a PDF. It tries
// github.com/ledongthuc/pdf first and falls back to pdfcpu content-stream
// extraction for the whole document; a page that fails inside a strategy
// degrades to an empty string. On total failure it returns an empty
// RawDocument rather than an error.
func Extract(pdfBytes []byte, maxPages int) RawDocument {
	if len(pdfBytes) == 0 || maxPages <= 0 {
		return RawDocument{}
	}

	doc, err := util.Attempt(
		func() (RawDocument, error) { return extractPlainText(pdfBytes, maxPages) },
		func() (RawDocument, error) { return extractContentStreams(pdfBytes, maxPages) },
	)
	if err != nil {
		return RawDocument{}
	}
	return doc
}

// extractPlainText is the primary strategy, built on github.com/ledongthuc/pdf.
func extractPlainText(data []byte, maxPages int) (doc RawDocument, err error) {
	// The reader panics on some malformed cross-reference tables.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("pdf read panic: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return RawDocument{}, err
	}

	n := reader.NumPage()
	if n > maxPages {
		n = maxPages
	}
	if n <= 0 {
		return RawDocument{}, errors.New("pdf has no pages")
	}

	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		pages = append(pages, pageText(reader, i))
	}
	return RawDocument{Pages: pages, PageCount: n}, nil
}

func pageText(reader *pdf.Reader, num int) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
		}
	}()
	page := reader.Page(num)
	if page.V.IsNull() {
		return ""
	}
	content, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return content
}

// extractContentStreams is the secondary strategy: pdfcpu page content
// streams parsed for text-showing operators.
func extractContentStreams(data []byte, maxPages int) (RawDocument, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := pdfcpuapi.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return RawDocument{}, fmt.Errorf("pdfcpu read: %w", err)
	}

	n := ctx.PageCount
	if n > maxPages {
		n = maxPages
	}
	if n <= 0 {
		return RawDocument{}, errors.New("pdfcpu: no pages")
	}

	pages := make([]string, 0, n)
	for pageNr := 1; pageNr <= n; pageNr++ {
		pages = append(pages, streamPageText(ctx, pageNr))
	}
	return RawDocument{Pages: pages, PageCount: n}, nil
}

func streamPageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	raw, err := io.ReadAll(r)
	if err != nil || len(raw) == 0 {
		return ""
	}
	return textFromStream(raw)
}
