package cmd

import (
	"github.com/termsui/suicfg/internal/engine"
	"github.com/termsui/suicfg/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var profileActivateCmd = &cobra.Command{
	Use:   "activate <name>",
	Short: "Make an RPC profile active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting profile activate command")
		ctl, doc, err := openDocument()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		change, err := applyAndSave(ctl, doc, engine.SetProfileActive{
			Group: resolveScope(doc, profileGroup),
			Name:  args[0],
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to activate profile: %v", err)
		}

		cmd.Print(color.GreenString("✓") + " Activated profile " + ui.Highlight.Sprint(change.Name) + "\n" + sideEffects(change))
		return nil
	},
}
