package cmd

import (
	"github.com/spf13/cobra"
)

// profileGroup scopes profile subcommands to a group. Empty means the
// active group for primary documents and the environment list for client
// documents.
var profileGroup string

var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage RPC profiles",
	Long: `Adds, edits, activates and removes RPC profiles.

Profiles live inside a group of a primary configuration; client
configurations keep a single flat environment list instead. Without
--group the active group is used.`,
}

func init() {
	registerEditorFlags(ProfileCmd)
	ProfileCmd.PersistentFlags().StringVarP(&profileGroup, "group", "g", "", "group holding the profile (defaults to the active group)")

	ProfileCmd.AddCommand(profileAddCmd)
	ProfileCmd.AddCommand(profileEditCmd)
	ProfileCmd.AddCommand(profileActivateCmd)
	ProfileCmd.AddCommand(profileRemoveCmd)
}
