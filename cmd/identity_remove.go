package cmd

import (
	"github.com/termsui/suicfg/internal/engine"
	"github.com/termsui/suicfg/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var identityRemoveCmd = &cobra.Command{
	Use:   "remove <alias>",
	Short: "Remove a signing identity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting identity remove command")
		ctl, doc, err := openDocument()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		change, err := applyAndSave(ctl, doc, engine.DeleteIdentity{
			Scope: resolveScope(doc, identityGroup),
			Alias: args[0],
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to remove identity: %v", err)
		}

		cmd.Print(color.GreenString("✓") + " Removed identity " + ui.Highlight.Sprint(change.Name) + "\n" + sideEffects(change))
		return nil
	},
}
