package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/doco-cli/internal/ingest"
)

var uploadParent string

var uploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Upload a file into the workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		meta, err := ingest.Describe(path)
		if err != nil {
			return err
		}
		id := ws.AddFile(meta, uploadParent)

		// Ingestion is asynchronous; the CLI is one-shot, so wait for the
		// bytes before exiting. A failed read leaves the file registered
		// without content, same as an upload that never finished.
		res := <-ingest.ReadAsync(path)
		if res.Err != nil {
			fmt.Printf("⚠ File registered without content: %v\n", res.Err)
			fmt.Printf("✓ File added: %s (%s)\n", meta.Name, id)
			return nil
		}
		ws.AttachFileContent(id, res.Content)
		fmt.Printf("✓ File added: %s (%s, %d bytes)\n", meta.Name, id, len(res.Content))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().StringVar(&uploadParent, "in", "", "parent folder id (default root)")
}
