package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lsFolder string

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List folders and files",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		folders := ws.ChildFolders(lsFolder)
		files := ws.ChildFiles(lsFolder)
		if len(folders) == 0 && len(files) == 0 {
			fmt.Println("(empty)")
			return nil
		}
		for _, f := range folders {
			fmt.Printf("d %s  %s\n", f.ID, f.Name)
		}
		for _, f := range files {
			loaded := ""
			if f.Content == nil {
				loaded = "  (content pending)"
			}
			fmt.Printf("- %s  %s  %s, %d bytes%s\n", f.ID, f.Name, f.MediaType, f.Size, loaded)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().StringVar(&lsFolder, "in", "", "folder id to list (default root)")
}
