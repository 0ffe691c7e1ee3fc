package cmd

import (
	"github.com/termsui/suicfg/internal/engine"
	"github.com/termsui/suicfg/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var groupActivateCmd = &cobra.Command{
	Use:   "activate <name>",
	Short: "Make a profile group active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting group activate command")
		ctl, doc, err := openDocument()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		change, err := applyAndSave(ctl, doc, engine.SetGroupActive{Name: args[0]})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to activate group: %v", err)
		}

		cmd.Print(color.GreenString("✓") + " Activated group " + ui.Highlight.Sprint(change.Name) + "\n" + sideEffects(change))
		return nil
	},
}
