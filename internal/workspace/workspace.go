package workspace

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/KaramelBytes/doco-cli/internal/store"
)

// DefaultSnapshotKey is the blob-store key the full workspace snapshot is
// written under.
const DefaultSnapshotKey = "doco-app-state"

// ErrFileNotFound is returned by OpenDocument when the source file does not
// exist. It is the only hard failure in the workspace API; every other
// operation on a missing id is a silent no-op.
var ErrFileNotFound = errors.New("file not found")

// Workspace is the single mutation surface for one user's files, folders,
// groups, documents and annotations. Every successful mutation writes a full
// snapshot to the backing store. All methods are safe for concurrent use; the
// mutex also serializes the asynchronous ingestion and page-count callbacks
// against ordinary operations.
type Workspace struct {
	mu sync.Mutex

	files   map[string]*File
	folders map[string]*Folder
	groups  map[string]*Group

	documents map[string]*Document
	docByFile map[string]string // fileID -> documentID, at most one each
	opened    []string
	active    string

	tool    ToolState
	ui      UIState
	capture strokeCapture

	st  store.Store
	key string
	log zerolog.Logger
}

// Open loads the workspace snapshot from st, or starts from the default empty
// state when no snapshot exists. A corrupt snapshot is logged and discarded
// rather than failing startup.
func Open(st store.Store, logger zerolog.Logger) *Workspace {
	return OpenKey(st, DefaultSnapshotKey, logger)
}

// OpenKey is Open with an explicit snapshot key.
func OpenKey(st store.Store, key string, logger zerolog.Logger) *Workspace {
	w := &Workspace{
		files:     make(map[string]*File),
		folders:   make(map[string]*Folder),
		groups:    make(map[string]*Group),
		documents: make(map[string]*Document),
		docByFile: make(map[string]string),
		tool:      DefaultToolState(),
		ui:        DefaultUIState(),
		st:        st,
		key:       key,
		log:       logger,
	}
	w.groups[MainGroupID] = &Group{
		ID:        MainGroupID,
		Name:      "MAIN",
		Documents: []string{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	b, err := st.Get(key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// fresh workspace
	case err != nil:
		w.log.Error().Err(err).Msg("read snapshot; starting empty")
	default:
		if err := w.restore(b); err != nil {
			w.log.Error().Err(err).Msg("corrupt snapshot; starting empty")
		}
	}
	return w
}

// persist writes the full workspace snapshot. Callers hold w.mu. Write
// failures are logged, not surfaced: the in-memory state is already mutated
// and remains authoritative for the session.
func (w *Workspace) persist() {
	b, err := w.snapshot()
	if err != nil {
		w.log.Error().Err(err).Msg("encode snapshot")
		return
	}
	if err := w.st.Set(w.key, b); err != nil {
		w.log.Error().Err(err).Msg("write snapshot")
	}
}

// File returns the file with the given id, or nil.
func (w *Workspace) File(id string) *File {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[id]
}

// Folder returns the folder with the given id, or nil.
func (w *Workspace) Folder(id string) *Folder {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.folders[id]
}

// Group returns the group with the given id, or nil.
func (w *Workspace) Group(id string) *Group {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.groups[id]
}

// Document returns the document with the given id, or nil.
func (w *Workspace) Document(id string) *Document {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.documents[id]
}

// DocumentForFile returns the live document bound to the given file, or nil.
func (w *Workspace) DocumentForFile(fileID string) *Document {
	w.mu.Lock()
	defer w.mu.Unlock()
	if id, ok := w.docByFile[fileID]; ok {
		return w.documents[id]
	}
	return nil
}

// Files returns all files sorted by name.
func (w *Workspace) Files() []*File {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]*File, 0, len(w.files))
	for _, f := range w.files {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Folders returns all folders sorted by name.
func (w *Workspace) Folders() []*Folder {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]*Folder, 0, len(w.folders))
	for _, f := range w.folders {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Groups returns all groups sorted by name, main group first.
func (w *Workspace) Groups() []*Group {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]*Group, 0, len(w.groups))
	for _, g := range w.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if (out[i].ID == MainGroupID) != (out[j].ID == MainGroupID) {
			return out[i].ID == MainGroupID
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Documents returns all document records (open or not) sorted by name.
func (w *Workspace) Documents() []*Document {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]*Document, 0, len(w.documents))
	for _, d := range w.documents {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (w *Workspace) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return fmt.Sprintf("workspace: %d files, %d folders, %d groups, %d documents (%d open)",
		len(w.files), len(w.folders), len(w.groups), len(w.documents), len(w.opened))
}
