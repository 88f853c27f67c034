package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/doco-cli/internal/render"
	"github.com/KaramelBytes/doco-cli/internal/workspace"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Open, close and navigate documents",
}

var docOpenCmd = &cobra.Command{
	Use:   "open <file-id>",
	Short: "Open a file as a document (reuses an existing session)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		id, err := ws.OpenDocument(args[0])
		if err != nil {
			return err
		}
		reportPageCount(ws, id)
		d := ws.Document(id)
		fmt.Printf("✓ Document open: %s (%s), page %d/%s\n", d.Name, d.ID, d.CurrentPage, totalOrUnknown(d.TotalPages))
		return nil
	},
}

// reportPageCount plays the rendering collaborator: once a document's file
// has content, it reports the displayed page count out-of-band.
func reportPageCount(ws *workspace.Workspace, docID string) {
	d := ws.Document(docID)
	if d == nil || d.TotalPages > 0 {
		return
	}
	f := ws.File(d.FileID)
	if f == nil || f.Content == nil {
		return
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		n, err := render.Heuristic{}.PageCount(f.Content, f.MediaType)
		if err != nil {
			return
		}
		ws.SetPageCount(docID, n)
	}()
	<-done
}

func totalOrUnknown(total int) string {
	if total == 0 {
		return "?"
	}
	return strconv.Itoa(total)
}

var docCloseCmd = &cobra.Command{
	Use:   "close <document-id>",
	Short: "Close a document (auto-saves when enabled)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()
		ws.CloseDocument(args[0])
		fmt.Printf("✓ Document closed: %s\n", args[0])
		return nil
	},
}

var docSaveCmd = &cobra.Command{
	Use:   "save <document-id>",
	Short: "Save a document's annotations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()
		ws.SaveDocument(args[0])
		fmt.Printf("✓ Document saved: %s\n", args[0])
		return nil
	},
}

var docListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents and their session state",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		docs := ws.Documents()
		if len(docs) == 0 {
			fmt.Println("(no documents)")
			return nil
		}
		opened := make(map[string]bool)
		for _, id := range ws.OpenedDocuments() {
			opened[id] = true
		}
		active := ws.ActiveDocument()
		for _, d := range docs {
			state := "closed"
			if opened[d.ID] {
				state = "open"
			}
			if d.ID == active {
				state = "active"
			}
			dirty := ""
			if d.Dirty {
				dirty = " *"
			}
			fmt.Printf("- %s  %s  [%s] page %d/%s, zoom %.2f, rot %d, %d annotations%s\n",
				d.ID, d.Name, state, d.CurrentPage, totalOrUnknown(d.TotalPages),
				d.Zoom, d.Rotation, len(d.Annotations), dirty)
		}
		return nil
	},
}

var docActivateCmd = &cobra.Command{
	Use:   "activate <document-id>",
	Short: "Make an opened document the active one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()
		ws.SetActiveDocument(args[0])
		fmt.Printf("✓ Active document: %s\n", ws.ActiveDocument())
		return nil
	},
}

var docPageCmd = &cobra.Command{
	Use:   "page <document-id> <page>",
	Short: "Turn to a page",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid page %q", args[1])
		}
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()
		ws.SetDocumentPage(args[0], page)
		if d := ws.Document(args[0]); d != nil {
			fmt.Printf("✓ %s at page %d/%s\n", d.Name, d.CurrentPage, totalOrUnknown(d.TotalPages))
		}
		return nil
	},
}

var docZoomCmd = &cobra.Command{
	Use:   "zoom <document-id> <factor>",
	Short: "Set the zoom factor (clamped to 0.5–3.0)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		z, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid zoom %q", args[1])
		}
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()
		ws.SetDocumentZoom(args[0], z)
		if d := ws.Document(args[0]); d != nil {
			fmt.Printf("✓ %s at zoom %.2f\n", d.Name, d.Zoom)
		}
		return nil
	},
}

var docRotateCmd = &cobra.Command{
	Use:   "rotate <document-id> <degrees>",
	Short: "Set the rotation (snapped to 90° steps)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		deg, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid rotation %q", args[1])
		}
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()
		ws.SetDocumentRotation(args[0], deg)
		if d := ws.Document(args[0]); d != nil {
			fmt.Printf("✓ %s rotated to %d°\n", d.Name, d.Rotation)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(docCmd)
	docCmd.AddCommand(docOpenCmd)
	docCmd.AddCommand(docCloseCmd)
	docCmd.AddCommand(docSaveCmd)
	docCmd.AddCommand(docListCmd)
	docCmd.AddCommand(docActivateCmd)
	docCmd.AddCommand(docPageCmd)
	docCmd.AddCommand(docZoomCmd)
	docCmd.AddCommand(docRotateCmd)
}
