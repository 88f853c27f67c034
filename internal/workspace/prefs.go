package workspace

// Tool identifiers accepted by SetActiveTool.
const (
	ToolNone      = ""
	ToolHighlight = "highlight"
	ToolPencil    = "pencil"
	ToolText      = "text"
	ToolEraser    = "eraser"
)

// View modes.
const (
	ViewSingle = "single"
	ViewDouble = "double"
)

// ToolState holds the annotation tool preferences. Written by the
// presentation layer, read by the annotation engine.
type ToolState struct {
	ActiveTool string  `json:"active_tool"`
	Color      string  `json:"color"`
	Thickness  float64 `json:"thickness"`
	TextOnly   bool    `json:"text_only,omitempty"`
}

// UIState holds presentation preferences that ride along in the snapshot.
// ActiveGroup selects the group newly opened documents join; AutoSave
// controls whether closing a dirty document saves it first.
type UIState struct {
	Fullscreen      bool   `json:"fullscreen"`
	ShowFileManager bool   `json:"show_file_manager"`
	ActiveGroup     string `json:"active_group"`
	ViewMode        string `json:"view_mode"`
	AutoSave        bool   `json:"auto_save"`
}

// DefaultToolState mirrors the initial tool settings of a fresh workspace.
func DefaultToolState() ToolState {
	return ToolState{
		ActiveTool: ToolNone,
		Color:      "#FACC15",
		Thickness:  2,
	}
}

// DefaultUIState returns the UI preferences of a fresh workspace.
func DefaultUIState() UIState {
	return UIState{
		ActiveGroup: MainGroupID,
		ViewMode:    ViewSingle,
		AutoSave:    true,
	}
}

// ToolState returns a copy of the current tool preferences.
func (w *Workspace) ToolState() ToolState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tool
}

// UIState returns a copy of the current UI preferences.
func (w *Workspace) UIState() UIState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ui
}

// SetToolState replaces the tool preferences.
func (w *Workspace) SetToolState(t ToolState) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tool = t
	w.persist()
}

// SetUIState replaces the UI preferences. An empty ActiveGroup or one naming
// a group that no longer exists falls back to the main group.
func (w *Workspace) SetUIState(u UIState) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.groups[u.ActiveGroup]; !ok {
		u.ActiveGroup = MainGroupID
	}
	w.ui = u
	w.persist()
}
