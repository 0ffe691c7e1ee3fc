package cmd

import (
	"github.com/termsui/suicfg/internal/engine"
	"github.com/termsui/suicfg/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var groupAddActivate bool

var groupAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new profile group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting group add command")
		ctl, doc, err := openDocument()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		change, err := applyAndSave(ctl, doc, engine.AddGroup{
			Name:       args[0],
			MakeActive: groupAddActivate,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to add group: %v", err)
		}

		cmd.Print(color.GreenString("✓") + " Added group " + ui.Highlight.Sprint(change.Name) + "\n" + sideEffects(change))
		return nil
	},
}

func init() {
	groupAddCmd.Flags().BoolVar(&groupAddActivate, "activate", false, "make the new group active")
}
