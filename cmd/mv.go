package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	mvFile   string
	mvFolder string
	mvTo     string
	mvName   string
)

var mvCmd = &cobra.Command{
	Use:   "mv",
	Short: "Move or rename a file or folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		if (mvFile == "") == (mvFolder == "") {
			return fmt.Errorf("specify exactly one of --file or --folder")
		}
		if mvTo == "" && mvName == "" && !cmd.Flags().Changed("to") {
			return fmt.Errorf("nothing to do: pass --to and/or --name")
		}
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		// Cyclic folder moves and unknown ids are silently ignored by the
		// workspace, so report the state afterwards instead of the request.
		if mvFile != "" {
			if cmd.Flags().Changed("to") {
				ws.MoveFile(mvFile, mvTo)
			}
			if mvName != "" {
				ws.RenameFile(mvFile, mvName)
			}
			if f := ws.File(mvFile); f != nil {
				fmt.Printf("✓ File %s now %q under %q\n", f.ID, f.Name, orRoot(f.ParentID))
			}
			return nil
		}
		if cmd.Flags().Changed("to") {
			ws.MoveFolder(mvFolder, mvTo)
		}
		if mvName != "" {
			ws.RenameFolder(mvFolder, mvName)
		}
		if f := ws.Folder(mvFolder); f != nil {
			fmt.Printf("✓ Folder %s now %q under %q\n", f.ID, f.Name, orRoot(f.ParentID))
		}
		return nil
	},
}

func orRoot(parentID string) string {
	if parentID == "" {
		return "root"
	}
	return parentID
}

func init() {
	rootCmd.AddCommand(mvCmd)
	mvCmd.Flags().StringVar(&mvFile, "file", "", "file id to move")
	mvCmd.Flags().StringVar(&mvFolder, "folder", "", "folder id to move")
	mvCmd.Flags().StringVar(&mvTo, "to", "", "destination folder id (empty for root)")
	mvCmd.Flags().StringVar(&mvName, "name", "", "new name")
}
