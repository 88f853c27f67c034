package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/doco-cli/internal/workspace"
)

// runCmd is a helper to execute the root command with args.
func runCmd(t *testing.T, args ...string) {
	t.Helper()
	resetFlags(t)
	loadConfig()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

// resetFlags clears bound flag variables that would otherwise stick between
// invocations of the shared root command.
func resetFlags(t *testing.T) {
	t.Helper()
	mkdirParent = ""
	uploadParent = ""
	lsFolder = ""
	mvFile, mvFolder, mvTo, mvName = "", "", "", ""
	rmFile, rmFolder = "", ""
	annTool, annAt, annColor, annPage = workspace.ToolPencil, "0,0", "", 0
}

// inspect opens the workspace directly to examine state between commands.
// The store must be closed before the next command runs.
func inspect(t *testing.T, fn func(ws *workspace.Workspace)) {
	t.Helper()
	loadConfig()
	ws, closeWS, err := openWorkspace()
	if err != nil {
		t.Fatalf("open workspace: %v", err)
	}
	defer closeWS()
	fn(ws)
}

func TestCLI_UploadAnnotateCloseReopen(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	pdf := "%PDF-1.4\n" +
		"3 0 obj << /Type /Page >> endobj\n" +
		"4 0 obj << /Type /Page >> endobj\n%%EOF"
	pdfPath := filepath.Join(home, "q1.pdf")
	if err := os.WriteFile(pdfPath, []byte(pdf), 0o644); err != nil {
		t.Fatalf("write pdf: %v", err)
	}

	runCmd(t, "mkdir", "Reports")

	var folderID string
	inspect(t, func(ws *workspace.Workspace) {
		folders := ws.ChildFolders("")
		if len(folders) != 1 || folders[0].Name != "Reports" {
			t.Fatalf("expected one folder Reports, got %v", folders)
		}
		folderID = folders[0].ID
	})

	runCmd(t, "upload", pdfPath, "--in", folderID)

	var fileID string
	inspect(t, func(ws *workspace.Workspace) {
		files := ws.ChildFiles(folderID)
		if len(files) != 1 {
			t.Fatalf("expected one file, got %d", len(files))
		}
		fileID = files[0].ID
		if files[0].Content == nil {
			t.Fatal("expected ingested content")
		}
		if files[0].MediaType != "application/pdf" {
			t.Fatalf("media type = %s", files[0].MediaType)
		}
	})

	runCmd(t, "doc", "open", fileID)

	var docID string
	inspect(t, func(ws *workspace.Workspace) {
		d := ws.DocumentForFile(fileID)
		if d == nil {
			t.Fatal("expected a document for the uploaded file")
		}
		docID = d.ID
		if d.TotalPages != 2 {
			t.Fatalf("expected page count 2, got %d", d.TotalPages)
		}
	})

	runCmd(t, "annotate", "stroke", docID, "10,10", "20,20", "30,25")
	runCmd(t, "doc", "close", docID)

	inspect(t, func(ws *workspace.Workspace) {
		d := ws.Document(docID)
		if d == nil {
			t.Fatal("document record must survive close")
		}
		if len(d.Annotations) != 1 {
			t.Fatalf("expected one annotation, got %d", len(d.Annotations))
		}
		if d.Dirty {
			t.Fatal("auto-save should have cleared dirty on close")
		}
		if len(ws.OpenedDocuments()) != 0 {
			t.Fatal("document should be closed")
		}
	})

	// reopening the same file returns the same document
	runCmd(t, "doc", "open", fileID)
	inspect(t, func(ws *workspace.Workspace) {
		d := ws.DocumentForFile(fileID)
		if d == nil || d.ID != docID {
			t.Fatalf("expected document %s to be reused", docID)
		}
		if len(d.Annotations) != 1 {
			t.Fatal("annotation lost across reopen")
		}
	})
}

func TestCLI_GroupLifecycle(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	runCmd(t, "group", "add", "research")

	var gid string
	inspect(t, func(ws *workspace.Workspace) {
		for _, g := range ws.Groups() {
			if g.Name == "research" {
				gid = g.ID
			}
		}
		if gid == "" {
			t.Fatal("group research not created")
		}
	})

	runCmd(t, "group", "use", gid)
	inspect(t, func(ws *workspace.Workspace) {
		if ws.UIState().ActiveGroup != gid {
			t.Fatalf("active group = %s, want %s", ws.UIState().ActiveGroup, gid)
		}
	})

	// deleting the reserved group is rejected before touching the store
	rootCmd.SetArgs([]string{"group", "rm", workspace.MainGroupID})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error deleting the main group")
	}

	runCmd(t, "group", "rm", gid)
	inspect(t, func(ws *workspace.Workspace) {
		if ws.Group(gid) != nil {
			t.Fatal("group should be gone")
		}
		if ws.UIState().ActiveGroup != workspace.MainGroupID {
			t.Fatal("active selection should reset to main")
		}
	})
}

func TestCLI_ExportImport(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	runCmd(t, "mkdir", "Stuff")
	out := filepath.Join(home, "backup.json")
	runCmd(t, "export", out)

	if _, err := os.Stat(out); err != nil {
		t.Fatalf("export file missing: %v", err)
	}

	runCmd(t, "import", out)
	inspect(t, func(ws *workspace.Workspace) {
		if len(ws.ChildFolders("")) != 1 {
			t.Fatal("imported workspace should have the folder")
		}
	})
}
