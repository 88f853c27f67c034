// Package render is the seam to the page-rendering collaborator. The
// workspace core only ever needs one fact back from it: how many pages a
// stored blob displays as. Producing pixels is entirely out of scope.
package render

import (
	"errors"
	"regexp"
)

// ErrNoContent is returned when a page count is requested for a file whose
// bytes have not been ingested yet.
var ErrNoContent = errors.New("no content to render")

// PageCounter reports the displayed page count for a stored blob. The count
// arrives out-of-band relative to workspace operations; callers feed it to
// Workspace.SetPageCount whenever it lands.
type PageCounter interface {
	PageCount(content []byte, mediaType string) (int, error)
}

// Heuristic is the built-in PageCounter: PDF page objects are counted from
// the raw bytes, anything else renders as one page. A real renderer plugged
// in behind the interface supersedes this.
type Heuristic struct{}

var _ PageCounter = Heuristic{}

// pdfPage matches PDF page object markers. The \b keeps /Type /Pages (the
// page tree node) from counting as a page.
var pdfPage = regexp.MustCompile(`/Type\s*/Page\b`)

func (Heuristic) PageCount(content []byte, mediaType string) (int, error) {
	if len(content) == 0 {
		return 0, ErrNoContent
	}
	if mediaType != "application/pdf" {
		return 1, nil
	}
	n := len(pdfPage.FindAll(content, -1))
	if n == 0 {
		n = 1
	}
	return n, nil
}
