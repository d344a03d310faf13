// Package ocr holds the OCR provider's response shapes and the rule for
// assembling them into a single text blob for downstream extraction.
package ocr

import "strings"

// PageDelimiter separates per-page text in the assembled output. It is chosen
// to be distinguishable from ordinary document content.
const PageDelimiter = "\n<<<>>>\n"

// Page is one page of a multi-page OCR response.
type Page struct {
	Index    int    `json:"index,omitempty"`
	Markdown string `json:"markdown"`
}

// Result is the OCR provider's response. Single-page documents may carry a
// flattened Markdown field; multi-page documents carry Pages.
type Result struct {
	Markdown string `json:"markdown,omitempty"`
	Pages    []Page `json:"pages,omitempty"`
}

// AssembleText returns the text handed to the extraction step. A flattened
// markdown field is used verbatim; otherwise pages are joined in page order
// with PageDelimiter. Pages are never reordered or deduplicated.
func (r Result) AssembleText() string {
	if r.Markdown != "" {
		return r.Markdown
	}
	parts := make([]string, 0, len(r.Pages))
	for _, p := range r.Pages {
		parts = append(parts, p.Markdown)
	}
	return strings.Join(parts, PageDelimiter)
}

// Empty reports whether the response carried no text at all.
func (r Result) Empty() bool {
	return r.Markdown == "" && len(r.Pages) == 0
}
