package cmd

import (
	"github.com/spf13/cobra"
)

var GroupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage profile groups",
	Long:  `Adds, renames, activates and removes the profile groups of a primary configuration.`,
}

func init() {
	registerEditorFlags(GroupCmd)

	GroupCmd.AddCommand(groupAddCmd)
	GroupCmd.AddCommand(groupRenameCmd)
	GroupCmd.AddCommand(groupActivateCmd)
	GroupCmd.AddCommand(groupRemoveCmd)
}
