package cmd

import (
	"github.com/termsui/suicfg/internal/engine"
	"github.com/termsui/suicfg/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var groupRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a profile group and everything in it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting group remove command")
		ctl, doc, err := openDocument()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		change, err := applyAndSave(ctl, doc, engine.DeleteGroup{Name: args[0]})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to remove group: %v", err)
		}

		cmd.Print(color.GreenString("✓") + " Removed group " + ui.Highlight.Sprint(change.Name) + "\n" + sideEffects(change))
		return nil
	},
}
