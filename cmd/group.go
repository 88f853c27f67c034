package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/doco-cli/internal/workspace"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage document groups",
}

var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List groups and their documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()
		active := ws.UIState().ActiveGroup
		for _, g := range ws.Groups() {
			marker := " "
			if g.ID == active {
				marker = "*"
			}
			fmt.Printf("%s %s  %s  [%s]\n", marker, g.ID, g.Name, strings.Join(g.Documents, ", "))
		}
		return nil
	},
}

var groupAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()
		id := ws.AddGroup(args[0])
		fmt.Printf("✓ Group created: %s (%s)\n", args[0], id)
		return nil
	},
}

var groupRmCmd = &cobra.Command{
	Use:   "rm <group-id>",
	Short: "Delete a group (its documents survive)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == workspace.MainGroupID {
			return fmt.Errorf("the %s group cannot be deleted", workspace.MainGroupID)
		}
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()
		ws.DeleteGroup(args[0])
		fmt.Printf("✓ Group deleted: %s\n", args[0])
		return nil
	},
}

var groupUseCmd = &cobra.Command{
	Use:   "use <group-id>",
	Short: "Select the group newly opened documents join",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()
		ws.SetActiveGroup(args[0])
		fmt.Printf("✓ Active group: %s\n", ws.UIState().ActiveGroup)
		return nil
	},
}

var groupAssignCmd = &cobra.Command{
	Use:   "assign <group-id> <document-id>",
	Short: "Add a document to a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()
		ws.AddDocumentToGroup(args[0], args[1])
		fmt.Printf("✓ Document %s in group %s\n", args[1], args[0])
		return nil
	},
}

var groupUnassignCmd = &cobra.Command{
	Use:   "unassign <group-id> <document-id>",
	Short: "Remove a document from a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()
		ws.RemoveDocumentFromGroup(args[0], args[1])
		fmt.Printf("✓ Document %s removed from group %s\n", args[1], args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(groupCmd)
	groupCmd.AddCommand(groupListCmd)
	groupCmd.AddCommand(groupAddCmd)
	groupCmd.AddCommand(groupRmCmd)
	groupCmd.AddCommand(groupUseCmd)
	groupCmd.AddCommand(groupAssignCmd)
	groupCmd.AddCommand(groupUnassignCmd)
}
