package cmd

import (
	"github.com/termsui/suicfg/internal/engine"
	"github.com/termsui/suicfg/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var profileEditCmd = &cobra.Command{
	Use:   "edit <name> <field> <value>",
	Short: "Edit one field of an RPC profile",
	Long: `Edits a single field of an existing profile. Fields are name,
rpc_url, graphql_url and grpc_url; client environments support name and
rpc_url only.

Examples:
  suicfg profile edit devnet rpc_url https://fullnode.devnet.sui.io:443 --file sui_config.toml
  suicfg profile edit devnet name development --file sui_config.toml`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting profile edit command")
		ctl, doc, err := openDocument()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		change, err := applyAndSave(ctl, doc, engine.EditProfileField{
			Group: resolveScope(doc, profileGroup),
			Name:  args[0],
			Field: args[1],
			Value: args[2],
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to edit profile: %v", err)
		}

		cmd.Print(color.GreenString("✓") + " Updated " + args[1] + " of profile " + ui.Highlight.Sprint(change.Name) + "\n")
		return nil
	},
}
