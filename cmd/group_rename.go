package cmd

import (
	"github.com/termsui/suicfg/internal/engine"
	"github.com/termsui/suicfg/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var groupRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a profile group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting group rename command")
		ctl, doc, err := openDocument()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		change, err := applyAndSave(ctl, doc, engine.RenameGroup{Old: args[0], New: args[1]})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to rename group: %v", err)
		}

		cmd.Print(color.GreenString("✓") + " Renamed group " + ui.Highlight.Sprint(args[0]) +
			" to " + ui.Highlight.Sprint(change.Name) + "\n")
		return nil
	},
}
