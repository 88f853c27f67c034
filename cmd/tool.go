package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/doco-cli/internal/workspace"
)

var (
	toolActive    string
	toolColor     string
	toolThickness float64
	toolTextOnly  bool

	uiAutoSave   bool
	uiViewMode   string
	uiFullscreen bool
)

var toolCmd = &cobra.Command{
	Use:   "tool",
	Short: "View or set tool and UI preferences",
}

var toolShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective tool and UI preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()
		t := ws.ToolState()
		u := ws.UIState()
		active := t.ActiveTool
		if active == workspace.ToolNone {
			active = "(none)"
		}
		fmt.Printf("active_tool: %s\n", active)
		fmt.Printf("color: %s\n", t.Color)
		fmt.Printf("thickness: %.1f\n", t.Thickness)
		fmt.Printf("text_only: %v\n", t.TextOnly)
		fmt.Printf("active_group: %s\n", u.ActiveGroup)
		fmt.Printf("view_mode: %s\n", u.ViewMode)
		fmt.Printf("auto_save: %v\n", u.AutoSave)
		fmt.Printf("fullscreen: %v\n", u.Fullscreen)
		return nil
	},
}

var toolSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change tool preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		t := ws.ToolState()
		if cmd.Flags().Changed("active") {
			switch toolActive {
			case "none":
				t.ActiveTool = workspace.ToolNone
			case workspace.ToolHighlight, workspace.ToolPencil, workspace.ToolText, workspace.ToolEraser:
				t.ActiveTool = toolActive
			default:
				return fmt.Errorf("unknown tool %q", toolActive)
			}
		}
		if cmd.Flags().Changed("color") {
			t.Color = toolColor
		}
		if cmd.Flags().Changed("thickness") {
			t.Thickness = toolThickness
		}
		if cmd.Flags().Changed("text-only") {
			t.TextOnly = toolTextOnly
		}
		ws.SetToolState(t)
		fmt.Println("✓ Tool preferences updated")
		return nil
	},
}

var toolUICmd = &cobra.Command{
	Use:   "ui",
	Short: "Change UI preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		u := ws.UIState()
		if cmd.Flags().Changed("autosave") {
			u.AutoSave = uiAutoSave
		}
		if cmd.Flags().Changed("view") {
			if uiViewMode != workspace.ViewSingle && uiViewMode != workspace.ViewDouble {
				return fmt.Errorf("view mode must be single or double")
			}
			u.ViewMode = uiViewMode
		}
		if cmd.Flags().Changed("fullscreen") {
			u.Fullscreen = uiFullscreen
		}
		ws.SetUIState(u)
		fmt.Println("✓ UI preferences updated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolCmd)
	toolCmd.AddCommand(toolShowCmd)
	toolCmd.AddCommand(toolSetCmd)
	toolCmd.AddCommand(toolUICmd)

	toolSetCmd.Flags().StringVar(&toolActive, "active", "", "active tool: none, highlight, pencil, text, eraser")
	toolSetCmd.Flags().StringVar(&toolColor, "color", "", "annotation color")
	toolSetCmd.Flags().Float64Var(&toolThickness, "thickness", 0, "stroke thickness")
	toolSetCmd.Flags().BoolVar(&toolTextOnly, "text-only", false, "highlight text content only")

	toolUICmd.Flags().BoolVar(&uiAutoSave, "autosave", true, "save dirty documents on close")
	toolUICmd.Flags().StringVar(&uiViewMode, "view", "", "view mode: single or double")
	toolUICmd.Flags().BoolVar(&uiFullscreen, "fullscreen", false, "fullscreen mode")
}
