package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/doco-cli/internal/utils"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export the workspace snapshot to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		b, err := ws.Export()
		if err != nil {
			return err
		}
		// re-indent for a readable backup file
		var v any
		if err := json.Unmarshal(b, &v); err != nil {
			return fmt.Errorf("reformat snapshot: %w", err)
		}
		pretty, err := utils.PrettyJSON(v)
		if err != nil {
			return err
		}
		if err := utils.SafeWriteFile(args[0], pretty); err != nil {
			return err
		}
		fmt.Printf("✓ Workspace exported to %s\n", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Replace the workspace with an exported snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		if err := ws.Import(b); err != nil {
			return err
		}
		fmt.Printf("✓ Workspace imported from %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
