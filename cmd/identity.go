package cmd

import (
	"github.com/spf13/cobra"
)

// identityGroup scopes identity subcommands to a group. Empty means the
// active group for primary documents and the keystore for client documents.
var identityGroup string

var IdentityCmd = &cobra.Command{
	Use:   "identity",
	Short: "Manage signing identities",
	Long: `Adds, renames, activates and removes signing identities.

Key material is generated locally; only the public key, the flag-prefixed
keystring and the derived address are stored. Without --group the active
group is used.`,
}

func init() {
	registerEditorFlags(IdentityCmd)
	IdentityCmd.PersistentFlags().StringVarP(&identityGroup, "group", "g", "", "group holding the identity (defaults to the active group)")

	IdentityCmd.AddCommand(identityAddCmd)
	IdentityCmd.AddCommand(identityRenameCmd)
	IdentityCmd.AddCommand(identityActivateCmd)
	IdentityCmd.AddCommand(identityRemoveCmd)
}
