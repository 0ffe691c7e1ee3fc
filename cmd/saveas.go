package cmd

import (
	"github.com/termsui/suicfg/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var SaveAsCmd = &cobra.Command{
	Use:   "save-as <new-path>",
	Short: "Write a configuration to a new path",
	Long: `Writes the configuration loaded from --file to a new path, leaving
the original file untouched. The document keeps its schema regardless of
the new extension.

Examples:
  suicfg save-as backup.toml --file sui_config.toml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting save-as command")
		ctl, _, err := openDocument()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		spinner, cleanup := startSpinner("Writing configuration...")
		defer cleanup()

		if err := ctl.SaveAs(args[0]); err != nil {
			return Logger.ErrorfAndReturn("failed to write %s: %v", args[0], err)
		}

		spinner.FinalMSG = color.GreenString("✓") + " Saved " + ui.Path.Sprint(args[0])
		return nil
	},
}

func init() {
	registerEditorFlags(SaveAsCmd)
}
