package workspace

import (
	"time"

	"github.com/google/uuid"
)

// Stroke capture is a two-state machine owned by the workspace, not the
// presentation layer: Idle until a pointer-down with a drawing tool active,
// Capturing until pointer-up or pointer-leave. Points arrive in viewport
// coordinates and are stored with the zoom factor divided out, so annotations
// live in unrotated page-local document space and scale correctly at any
// later zoom.
type captureState int

const (
	captureIdle captureState = iota
	capturing
)

type strokeCapture struct {
	state  captureState
	docID  string
	points []Point
}

// Capturing reports whether a stroke is currently in progress.
func (w *Workspace) Capturing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.capture.state == capturing
}

// BeginStroke is the pointer-down transition. It starts a capture only when
// the active tool is pencil or highlight and the document exists; otherwise
// the event is ignored and false is returned.
func (w *Workspace) BeginStroke(documentID string, x, y float64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.capture.state != captureIdle {
		return false
	}
	if w.tool.ActiveTool != ToolPencil && w.tool.ActiveTool != ToolHighlight {
		return false
	}
	d, ok := w.documents[documentID]
	if !ok {
		return false
	}
	w.capture = strokeCapture{
		state:  capturing,
		docID:  documentID,
		points: []Point{{X: x / d.Zoom, Y: y / d.Zoom}},
	}
	return true
}

// ExtendStroke is the pointer-move transition: it appends a point to the
// stroke in progress. Events outside a capture are ignored.
func (w *Workspace) ExtendStroke(x, y float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.capture.state != capturing {
		return
	}
	d, ok := w.documents[w.capture.docID]
	if !ok {
		// document destroyed mid-stroke; drop the capture
		w.capture = strokeCapture{}
		return
	}
	w.capture.points = append(w.capture.points, Point{X: x / d.Zoom, Y: y / d.Zoom})
}

// EndStroke is the pointer-up (or pointer-leave) transition. A stroke of at
// least two points is finalized into an annotation on the document's current
// page and the document becomes dirty; a shorter capture is a click, not a
// stroke, and is discarded. Returns the new annotation id, or empty.
func (w *Workspace) EndStroke() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	c := w.capture
	w.capture = strokeCapture{}
	if c.state != capturing || len(c.points) < 2 {
		return ""
	}
	d, ok := w.documents[c.docID]
	if !ok {
		return ""
	}
	kind := KindHighlight
	if w.tool.ActiveTool == ToolPencil {
		kind = KindPencil
	}
	a := Annotation{
		ID:        uuid.NewString(),
		Kind:      kind,
		Color:     w.tool.Color,
		Thickness: w.tool.Thickness,
		Points:    c.points,
		Page:      d.CurrentPage,
		CreatedAt: time.Now(),
	}
	w.appendAnnotationLocked(d, a)
	w.persist()
	return a.ID
}

// AddTextAnnotation places a text annotation at the given viewport anchor on
// the document's current page, using the current tool color and thickness.
func (w *Workspace) AddTextAnnotation(documentID, text string, x, y float64) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	d, ok := w.documents[documentID]
	if !ok {
		return ""
	}
	a := Annotation{
		ID:        uuid.NewString(),
		Kind:      KindText,
		Color:     w.tool.Color,
		Thickness: w.tool.Thickness,
		Text:      text,
		Anchor:    &Point{X: x / d.Zoom, Y: y / d.Zoom},
		Page:      d.CurrentPage,
		CreatedAt: time.Now(),
	}
	w.appendAnnotationLocked(d, a)
	w.persist()
	return a.ID
}

// RemoveAnnotation deletes an annotation by id and marks the document dirty.
// Unknown document or annotation ids are a no-op.
func (w *Workspace) RemoveAnnotation(documentID, annotationID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	d, ok := w.documents[documentID]
	if !ok {
		return
	}
	for i, a := range d.Annotations {
		if a.ID == annotationID {
			d.Annotations = append(d.Annotations[:i], d.Annotations[i+1:]...)
			d.Dirty = true
			d.UpdatedAt = time.Now()
			w.persist()
			return
		}
	}
}

// AnnotationsForPage returns, in creation order, the annotations of one page
// of a document. Each carries everything an overlay renderer needs; scaling
// by the display zoom is the renderer's business.
func (w *Workspace) AnnotationsForPage(documentID string, page int) []Annotation {
	w.mu.Lock()
	defer w.mu.Unlock()
	d, ok := w.documents[documentID]
	if !ok {
		return nil
	}
	var out []Annotation
	for _, a := range d.Annotations {
		if a.Page == page {
			out = append(out, a)
		}
	}
	return out
}

func (w *Workspace) appendAnnotationLocked(d *Document, a Annotation) {
	d.Annotations = append(d.Annotations, a)
	d.Dirty = true
	d.UpdatedAt = time.Now()
}
