// Package ingest feeds uploaded files into the workspace: it describes a file
// (name, media type, size) synchronously and produces its bytes
// asynchronously, mirroring how uploads arrive in two steps.
package ingest

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/doco-cli/internal/workspace"
)

// mediaTypes maps the extensions doco commonly sees. Anything else falls
// back to content sniffing once bytes are available.
var mediaTypes = map[string]string{
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".md":   "text/markdown",
	".csv":  "text/csv",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// Describe stats a file on disk and returns the metadata the content tree
// needs before any bytes have been read.
func Describe(path string) (workspace.FileMeta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return workspace.FileMeta{}, fmt.Errorf("stat upload: %w", err)
	}
	if info.IsDir() {
		return workspace.FileMeta{}, fmt.Errorf("upload %s: is a directory", path)
	}
	return workspace.FileMeta{
		Name:      filepath.Base(path),
		MediaType: MediaTypeFor(path, nil),
		Size:      info.Size(),
	}, nil
}

// MediaTypeFor resolves a media type from the filename extension, falling
// back to sniffing the leading bytes when the extension is unknown and data
// is available.
func MediaTypeFor(name string, data []byte) string {
	if mt, ok := mediaTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return mt
	}
	if len(data) > 0 {
		return http.DetectContentType(data)
	}
	return "application/octet-stream"
}

// Result is the outcome of an asynchronous read.
type Result struct {
	Content []byte
	Err     error
}

// ReadAsync reads the file's bytes off the calling goroutine and delivers
// exactly one Result. There is no cancellation: a read that never completes
// simply leaves the file without content.
func ReadAsync(path string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		b, err := os.ReadFile(path)
		if err != nil {
			ch <- Result{Err: fmt.Errorf("read upload: %w", err)}
			return
		}
		ch <- Result{Content: b}
	}()
	return ch
}
