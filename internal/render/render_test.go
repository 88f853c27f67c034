package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/doco-cli/internal/render"
)

func TestPageCountEmptyContent(t *testing.T) {
	_, err := render.Heuristic{}.PageCount(nil, "application/pdf")
	require.ErrorIs(t, err, render.ErrNoContent)
}

func TestPageCountNonPDFIsSinglePage(t *testing.T) {
	n, err := render.Heuristic{}.PageCount([]byte("plain text"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPageCountPDF(t *testing.T) {
	pdf := []byte(`%PDF-1.4
1 0 obj << /Type /Catalog /Pages 2 0 R >> endobj
2 0 obj << /Type /Pages /Count 3 >> endobj
3 0 obj << /Type /Page /Parent 2 0 R >> endobj
4 0 obj << /Type/Page /Parent 2 0 R >> endobj
5 0 obj << /Type /Page /Parent 2 0 R >> endobj
%%EOF`)
	n, err := render.Heuristic{}.PageCount(pdf, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, 3, n, "page tree node is not a page")
}

func TestPageCountPDFWithoutMarkers(t *testing.T) {
	n, err := render.Heuristic{}.PageCount([]byte("%PDF-1.4 garbage"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
