package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mkdirParent string

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <name>",
	Short: "Create a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()
		id := ws.AddFolder(args[0], mkdirParent)
		fmt.Printf("✓ Folder created: %s (%s)\n", args[0], id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mkdirCmd)
	mkdirCmd.Flags().StringVar(&mkdirParent, "in", "", "parent folder id (default root)")
}
