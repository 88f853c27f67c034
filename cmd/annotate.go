package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/doco-cli/internal/workspace"
)

var (
	annTool  string
	annAt    string
	annPage  int
	annColor string
)

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Draw and manage annotations",
}

var annotateStrokeCmd = &cobra.Command{
	Use:   "stroke <document-id> <x,y> <x,y> [<x,y>...]",
	Short: "Draw a freehand stroke on the current page",
	Long:  `Draws a pencil or highlight stroke through the given viewport points. A single point is a click, not a stroke, and produces nothing.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if annTool != workspace.ToolPencil && annTool != workspace.ToolHighlight {
			return fmt.Errorf("--tool must be pencil or highlight")
		}
		points, err := parsePoints(args[1:])
		if err != nil {
			return err
		}
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		tool := ws.ToolState()
		tool.ActiveTool = annTool
		if annColor != "" {
			tool.Color = annColor
		}
		ws.SetToolState(tool)

		if !ws.BeginStroke(args[0], points[0].X, points[0].Y) {
			return fmt.Errorf("document not found: %s", args[0])
		}
		for _, p := range points[1:] {
			ws.ExtendStroke(p.X, p.Y)
		}
		id := ws.EndStroke()
		if id == "" {
			fmt.Println("(stroke too short, nothing drawn)")
			return nil
		}
		fmt.Printf("✓ %s stroke %s (%d points)\n", annTool, id, len(points))
		return nil
	},
}

var annotateTextCmd = &cobra.Command{
	Use:   "text <document-id> <text>",
	Short: "Place a text annotation on the current page",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parsePoint(annAt)
		if err != nil {
			return fmt.Errorf("--at: %w", err)
		}
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		if annColor != "" {
			tool := ws.ToolState()
			tool.Color = annColor
			ws.SetToolState(tool)
		}
		id := ws.AddTextAnnotation(args[0], args[1], p.X, p.Y)
		if id == "" {
			return fmt.Errorf("document not found: %s", args[0])
		}
		fmt.Printf("✓ Text annotation %s\n", id)
		return nil
	},
}

var annotateListCmd = &cobra.Command{
	Use:   "list <document-id>",
	Short: "List a page's annotations in draw order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		page := annPage
		if page == 0 {
			d := ws.Document(args[0])
			if d == nil {
				return fmt.Errorf("document not found: %s", args[0])
			}
			page = d.CurrentPage
		}
		anns := ws.AnnotationsForPage(args[0], page)
		if len(anns) == 0 {
			fmt.Printf("(no annotations on page %d)\n", page)
			return nil
		}
		for _, a := range anns {
			switch a.Kind {
			case workspace.KindText:
				fmt.Printf("- %s  %s %q at (%.1f, %.1f), %s\n", a.ID, a.Kind, a.Text, a.Anchor.X, a.Anchor.Y, a.Color)
			default:
				fmt.Printf("- %s  %s, %d points, %s, thickness %.1f\n", a.ID, a.Kind, len(a.Points), a.Color, a.Thickness)
			}
		}
		return nil
	},
}

var annotateRmCmd = &cobra.Command{
	Use:   "rm <document-id> <annotation-id>",
	Short: "Delete an annotation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()
		ws.RemoveAnnotation(args[0], args[1])
		fmt.Printf("✓ Annotation removed: %s\n", args[1])
		return nil
	},
}

func parsePoints(args []string) ([]workspace.Point, error) {
	points := make([]workspace.Point, 0, len(args))
	for _, a := range args {
		p, err := parsePoint(a)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func parsePoint(s string) (workspace.Point, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return workspace.Point{}, fmt.Errorf("invalid point %q, want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return workspace.Point{}, fmt.Errorf("invalid point %q, want x,y", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return workspace.Point{}, fmt.Errorf("invalid point %q, want x,y", s)
	}
	return workspace.Point{X: x, Y: y}, nil
}

func init() {
	rootCmd.AddCommand(annotateCmd)
	annotateCmd.AddCommand(annotateStrokeCmd)
	annotateCmd.AddCommand(annotateTextCmd)
	annotateCmd.AddCommand(annotateListCmd)
	annotateCmd.AddCommand(annotateRmCmd)

	annotateStrokeCmd.Flags().StringVar(&annTool, "tool", workspace.ToolPencil, "stroke tool: pencil or highlight")
	annotateStrokeCmd.Flags().StringVar(&annColor, "color", "", "stroke color (default from tool settings)")
	annotateTextCmd.Flags().StringVar(&annAt, "at", "0,0", "anchor point x,y in viewport coordinates")
	annotateTextCmd.Flags().StringVar(&annColor, "color", "", "text color (default from tool settings)")
	annotateListCmd.Flags().IntVar(&annPage, "page", 0, "page number (default the document's current page)")
}
