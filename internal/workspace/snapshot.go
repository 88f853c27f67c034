package workspace

import (
	"encoding/json"
	"fmt"
	"time"
)

// snapshotState is the wire form of the full workspace, written to the blob
// store after every mutation. Timestamps ride as RFC 3339 strings and revive
// into time.Time on load.
type snapshotState struct {
	Files     map[string]*File     `json:"files"`
	Folders   map[string]*Folder   `json:"folders"`
	Groups    map[string]*Group    `json:"groups"`
	Documents map[string]*Document `json:"documents"`
	Opened    []string             `json:"opened_documents"`
	Active    string               `json:"active_document,omitempty"`
	Tool      ToolState            `json:"tool_state"`
	UI        UIState              `json:"ui_state"`
	SavedAt   time.Time            `json:"saved_at"`
}

// snapshot encodes the current state. Callers hold w.mu.
func (w *Workspace) snapshot() ([]byte, error) {
	s := snapshotState{
		Files:     w.files,
		Folders:   w.folders,
		Groups:    w.groups,
		Documents: w.documents,
		Opened:    w.opened,
		Active:    w.active,
		Tool:      w.tool,
		UI:        w.ui,
		SavedAt:   time.Now(),
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return b, nil
}

// restore replaces the workspace state with a decoded snapshot. Fields absent
// from an older snapshot keep their defaults: the snapshot is unmarshalled
// over a fully defaulted state rather than a zero one. Callers hold w.mu (or
// own the workspace exclusively, as during Open).
func (w *Workspace) restore(b []byte) error {
	s := snapshotState{
		Tool: DefaultToolState(),
		UI:   DefaultUIState(),
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}

	if s.Files == nil {
		s.Files = make(map[string]*File)
	}
	if s.Folders == nil {
		s.Folders = make(map[string]*Folder)
	}
	if s.Groups == nil {
		s.Groups = make(map[string]*Group)
	}
	if s.Documents == nil {
		s.Documents = make(map[string]*Document)
	}
	if _, ok := s.Groups[MainGroupID]; !ok {
		s.Groups[MainGroupID] = &Group{
			ID:        MainGroupID,
			Name:      "MAIN",
			Documents: []string{},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
	}

	w.files = s.Files
	w.folders = s.Folders
	w.groups = s.Groups
	w.documents = s.Documents
	w.tool = s.Tool
	w.ui = s.UI
	w.capture = strokeCapture{}

	if _, ok := w.groups[w.ui.ActiveGroup]; w.ui.ActiveGroup == "" || !ok {
		w.ui.ActiveGroup = MainGroupID
	}
	if w.ui.ViewMode == "" {
		w.ui.ViewMode = ViewSingle
	}

	// Rebuild the file -> document index and renormalize view state that an
	// older snapshot may hold out of bounds.
	w.docByFile = make(map[string]string, len(w.documents))
	for id, d := range w.documents {
		w.docByFile[d.FileID] = id
		if d.Annotations == nil {
			d.Annotations = []Annotation{}
		}
		if d.Zoom == 0 {
			d.Zoom = 1
		}
		d.Zoom = clampZoom(d.Zoom)
		d.Rotation = normalizeRotation(d.Rotation)
		d.CurrentPage = clampPage(d.CurrentPage, d.TotalPages)
	}

	// Opened entries must reference existing documents, without duplicates.
	w.opened = w.opened[:0]
	seen := make(map[string]bool, len(s.Opened))
	for _, id := range s.Opened {
		if _, ok := w.documents[id]; ok && !seen[id] {
			w.opened = append(w.opened, id)
			seen[id] = true
		}
	}
	w.active = ""
	if seen[s.Active] {
		w.active = s.Active
	}
	return nil
}

// Export returns the full workspace snapshot as JSON, for backup or transfer
// to another machine.
func (w *Workspace) Export() ([]byte, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot()
}

// Import replaces the entire workspace with the given exported snapshot and
// persists it. The previous state is kept when the payload does not parse.
func (w *Workspace) Import(b []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.restore(b); err != nil {
		return err
	}
	w.persist()
	return nil
}
