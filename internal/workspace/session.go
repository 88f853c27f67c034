package workspace

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OpenDocument opens a viewing session for the given file and returns the
// document id. If a document already exists for the file it is reused: its id
// joins the opened set (if absent) and becomes active. A brand new document
// starts at page 1, zoom 1, rotation 0, clean, and joins the active group.
// This is the one workspace operation with a hard failure: the source file
// must exist.
func (w *Workspace) OpenDocument(fileID string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if docID, ok := w.docByFile[fileID]; ok {
		w.ensureOpenedLocked(docID)
		w.active = docID
		w.persist()
		return docID, nil
	}

	f, ok := w.files[fileID]
	if !ok {
		return "", fmt.Errorf("open document: %w", ErrFileNotFound)
	}

	id := uuid.NewString()
	now := time.Now()
	w.documents[id] = &Document{
		ID:          id,
		Name:        f.Name,
		FileID:      fileID,
		Annotations: []Annotation{},
		CurrentPage: 1,
		Zoom:        1,
		Rotation:    0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	w.docByFile[fileID] = id
	w.ensureOpenedLocked(id)
	w.active = id
	w.addToGroupLocked(w.ui.ActiveGroup, id)
	w.persist()
	return id, nil
}

// CloseDocument removes a document from the opened set. A dirty document is
// saved first when auto-save is on. The record itself survives: reopening the
// same file returns the same document, annotations intact. If the closed
// document was active, the next remaining opened entry (insertion order)
// becomes active.
func (w *Workspace) CloseDocument(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.documents[id]; !ok {
		return
	}
	w.closeDocumentLocked(id)
	w.persist()
}

// SetActiveDocument switches the active slot. Passing an empty id clears it;
// ids outside the opened set are ignored.
func (w *Workspace) SetActiveDocument(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if id != "" && !w.isOpenedLocked(id) {
		return
	}
	w.active = id
	w.persist()
}

// SetDocumentPage turns to the given page. Once the rendering collaborator
// has reported a page count the value is clamped into [1, totalPages];
// before that only the lower bound applies.
func (w *Workspace) SetDocumentPage(id string, page int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	d, ok := w.documents[id]
	if !ok {
		return
	}
	d.CurrentPage = clampPage(page, d.TotalPages)
	d.UpdatedAt = time.Now()
	w.persist()
}

// SetDocumentZoom sets the zoom factor, clamped to [MinZoom, MaxZoom].
func (w *Workspace) SetDocumentZoom(id string, zoom float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	d, ok := w.documents[id]
	if !ok {
		return
	}
	d.Zoom = clampZoom(zoom)
	d.UpdatedAt = time.Now()
	w.persist()
}

// SetDocumentRotation sets the rotation, snapped to a 90-degree step and
// wrapped modulo 360.
func (w *Workspace) SetDocumentRotation(id string, degrees int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	d, ok := w.documents[id]
	if !ok {
		return
	}
	d.Rotation = normalizeRotation(degrees)
	d.UpdatedAt = time.Now()
	w.persist()
}

// SetPageCount is the out-of-band completion callback from the rendering
// collaborator. The current page is re-clamped into the newly known bound.
// Non-positive counts are ignored.
func (w *Workspace) SetPageCount(id string, pages int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	d, ok := w.documents[id]
	if !ok || pages < 1 {
		return
	}
	d.TotalPages = pages
	d.CurrentPage = clampPage(d.CurrentPage, pages)
	d.UpdatedAt = time.Now()
	w.persist()
}

// SaveDocument clears the dirty flag and bumps the update stamp. The actual
// snapshot write happens on every mutation anyway; this marks the annotation
// edits as saved.
func (w *Workspace) SaveDocument(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	d, ok := w.documents[id]
	if !ok {
		return
	}
	w.saveDocumentLocked(d)
	w.persist()
}

// OpenedDocuments returns the opened set in insertion order.
func (w *Workspace) OpenedDocuments() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.opened))
	copy(out, w.opened)
	return out
}

// ActiveDocument returns the active document id, or empty when none.
func (w *Workspace) ActiveDocument() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.active
}

func (w *Workspace) ensureOpenedLocked(id string) {
	if !w.isOpenedLocked(id) {
		w.opened = append(w.opened, id)
	}
}

func (w *Workspace) isOpenedLocked(id string) bool {
	for _, o := range w.opened {
		if o == id {
			return true
		}
	}
	return false
}

func (w *Workspace) closeDocumentLocked(id string) {
	if d, ok := w.documents[id]; ok && d.Dirty && w.ui.AutoSave {
		w.saveDocumentLocked(d)
	}
	for i, o := range w.opened {
		if o == id {
			w.opened = append(w.opened[:i], w.opened[i+1:]...)
			break
		}
	}
	if w.active == id {
		if len(w.opened) > 0 {
			w.active = w.opened[0]
		} else {
			w.active = ""
		}
	}
}

func (w *Workspace) saveDocumentLocked(d *Document) {
	d.Dirty = false
	d.UpdatedAt = time.Now()
	w.log.Debug().Str("document", d.ID).Msg("document saved")
}

func clampPage(page, total int) int {
	if page < 1 {
		return 1
	}
	if total > 0 && page > total {
		return total
	}
	return page
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

func normalizeRotation(deg int) int {
	r := deg % 360
	if r < 0 {
		r += 360
	}
	return r - r%90
}
