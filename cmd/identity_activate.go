package cmd

import (
	"github.com/termsui/suicfg/internal/engine"
	"github.com/termsui/suicfg/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var identityActivateCmd = &cobra.Command{
	Use:   "activate <alias>",
	Short: "Make a signing identity active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting identity activate command")
		ctl, doc, err := openDocument()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		change, err := applyAndSave(ctl, doc, engine.SetIdentityActive{
			Scope: resolveScope(doc, identityGroup),
			Alias: args[0],
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to activate identity: %v", err)
		}

		cmd.Print(color.GreenString("✓") + " Activated identity " + ui.Highlight.Sprint(change.Name) + "\n" + sideEffects(change))
		return nil
	},
}
