package workspace_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/doco-cli/internal/store"
	"github.com/KaramelBytes/doco-cli/internal/workspace"
)

func TestEveryMutationWritesSnapshot(t *testing.T) {
	st := store.NewMemory()
	ws := workspace.Open(st, zerolog.Nop())

	_, err := st.Get(workspace.DefaultSnapshotKey)
	require.ErrorIs(t, err, store.ErrNotFound, "opening alone mutates nothing")

	id := ws.AddFolder("docs", "")

	// a second workspace over the same store sees the folder without any
	// explicit save call
	ws2 := workspace.Open(st, zerolog.Nop())
	require.NotNil(t, ws2.Folder(id))
	assert.Equal(t, "docs", ws2.Folder(id).Name)
}

func TestSnapshotRoundTrip(t *testing.T) {
	st := store.NewMemory()
	ws := workspace.Open(st, zerolog.Nop())

	folder := ws.AddFolder("Reports", "")
	fileID := ws.AddFile(workspace.FileMeta{Name: "q1.pdf", MediaType: "application/pdf", Size: 3}, folder)
	ws.AttachFileContent(fileID, []byte{1, 2, 3})
	gid := ws.AddGroup("quarterlies")
	docID, err := ws.OpenDocument(fileID)
	require.NoError(t, err)
	ws.AddDocumentToGroup(gid, docID)
	ws.SetDocumentZoom(docID, 1.5)
	ws.SetDocumentRotation(docID, 180)
	ws.SetPageCount(docID, 7)
	ws.SetDocumentPage(docID, 4)
	_ = ws.AddTextAnnotation(docID, "check totals", 12, 8)
	tool := ws.ToolState()
	tool.ActiveTool = workspace.ToolHighlight
	tool.Color = "#00FF00"
	ws.SetToolState(tool)

	restored := workspace.Open(st, zerolog.Nop())

	f := restored.File(fileID)
	require.NotNil(t, f)
	assert.Equal(t, []byte{1, 2, 3}, f.Content)
	assert.Equal(t, folder, f.ParentID)
	assert.WithinDuration(t, ws.File(fileID).CreatedAt, f.CreatedAt, time.Millisecond)

	d := restored.Document(docID)
	require.NotNil(t, d)
	assert.Equal(t, 4, d.CurrentPage)
	assert.Equal(t, 7, d.TotalPages)
	assert.Equal(t, 1.5, d.Zoom)
	assert.Equal(t, 180, d.Rotation)
	require.Len(t, d.Annotations, 1)
	assert.Equal(t, "check totals", d.Annotations[0].Text)

	assert.Equal(t, []string{docID}, restored.OpenedDocuments())
	assert.Equal(t, docID, restored.ActiveDocument())
	assert.Contains(t, restored.Group(gid).Documents, docID)
	assert.Equal(t, "#00FF00", restored.ToolState().Color)
	assert.Equal(t, docID, restored.DocumentForFile(fileID).ID)
}

func TestOlderSnapshotFieldsDefault(t *testing.T) {
	st := store.NewMemory()
	// a minimal snapshot from an older version: no groups, no tool or ui
	// state, no opened set
	old := `{"files":{},"documents":{}}`
	require.NoError(t, st.Set(workspace.DefaultSnapshotKey, []byte(old)))

	ws := workspace.Open(st, zerolog.Nop())
	require.NotNil(t, ws.Group(workspace.MainGroupID))
	assert.True(t, ws.UIState().AutoSave, "auto-save defaults on")
	assert.Equal(t, workspace.MainGroupID, ws.UIState().ActiveGroup)
	assert.Equal(t, workspace.ViewSingle, ws.UIState().ViewMode)
	assert.Equal(t, "#FACC15", ws.ToolState().Color)
}

func TestSnapshotNormalizesStaleViewState(t *testing.T) {
	st := store.NewMemory()
	old := `{
		"files": {"f1": {"id": "f1", "name": "a.pdf"}},
		"documents": {"d1": {"id": "d1", "name": "a.pdf", "file_id": "f1",
			"current_page": 99, "total_pages": 4, "zoom": 9.5, "rotation": 45}},
		"opened_documents": ["d1", "d1", "ghost"],
		"active_document": "ghost"
	}`
	require.NoError(t, st.Set(workspace.DefaultSnapshotKey, []byte(old)))

	ws := workspace.Open(st, zerolog.Nop())
	d := ws.Document("d1")
	require.NotNil(t, d)
	assert.Equal(t, 4, d.CurrentPage)
	assert.Equal(t, workspace.MaxZoom, d.Zoom)
	assert.Equal(t, 0, d.Rotation)
	assert.NotNil(t, d.Annotations)

	assert.Equal(t, []string{"d1"}, ws.OpenedDocuments(), "duplicates and ghosts dropped")
	assert.Empty(t, ws.ActiveDocument())
	assert.Equal(t, "d1", ws.DocumentForFile("f1").ID, "index rebuilt from snapshot")
}

func TestCorruptSnapshotFallsBackToEmpty(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, st.Set(workspace.DefaultSnapshotKey, []byte("{not json")))

	ws := workspace.Open(st, zerolog.Nop())
	assert.Empty(t, ws.Files())
	assert.NotNil(t, ws.Group(workspace.MainGroupID))
}

func TestExportImport(t *testing.T) {
	src := workspace.Open(store.NewMemory(), zerolog.Nop())
	folder := src.AddFolder("Reports", "")
	fileID := src.AddFile(workspace.FileMeta{Name: "q1.pdf"}, folder)
	docID, err := src.OpenDocument(fileID)
	require.NoError(t, err)
	_ = src.AddTextAnnotation(docID, "hello", 0, 0)

	b, err := src.Export()
	require.NoError(t, err)

	dstStore := store.NewMemory()
	dst := workspace.Open(dstStore, zerolog.Nop())
	scratch := dst.AddFolder("scratch", "")
	require.NoError(t, dst.Import(b))

	assert.Nil(t, dst.Folder(scratch), "import replaces everything")
	require.NotNil(t, dst.Document(docID))
	assert.Len(t, dst.Document(docID).Annotations, 1)

	// import persisted: a reopen sees the imported state
	again := workspace.Open(dstStore, zerolog.Nop())
	assert.NotNil(t, again.Document(docID))

	assert.Error(t, dst.Import([]byte("junk")))
	assert.NotNil(t, dst.Document(docID), "failed import keeps previous state")
}
