package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	rmFile   string
	rmFolder string
)

var rmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Delete a file or a folder (recursively)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if (rmFile == "") == (rmFolder == "") {
			return fmt.Errorf("specify exactly one of --file or --folder")
		}
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		if rmFile != "" {
			ws.DeleteFile(rmFile)
			fmt.Printf("✓ File deleted: %s\n", rmFile)
			return nil
		}
		ws.DeleteFolder(rmFolder)
		fmt.Printf("✓ Folder deleted: %s\n", rmFolder)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().StringVar(&rmFile, "file", "", "file id to delete")
	rmCmd.Flags().StringVar(&rmFolder, "folder", "", "folder id to delete with its contents")
}
