package cmd

import (
	"github.com/termsui/suicfg/internal/controller"
	"github.com/termsui/suicfg/internal/format"
	"github.com/termsui/suicfg/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var NewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a configuration file seeded with defaults",
	Long: `Creates a new configuration file at the path given by --file.

The schema is chosen from the file extension: .json and .toml produce a
primary document, .yaml and .yml a client document. The new document
carries one active group with one devnet profile and one freshly
generated ed25519 identity.

Examples:
  # Create a primary TOML configuration
  suicfg new --file sui_config.toml

  # Create a client YAML configuration
  suicfg new --file client.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting new command")
		if configFile == "" {
			return Logger.ErrorfAndReturn("no configuration file given, use --file")
		}

		spinner, cleanup := startSpinner("Creating configuration...")
		defer cleanup()

		adapter, err := format.ForPath(configFile)
		if err != nil {
			return Logger.ErrorfAndReturn("unsupported file extension: %v", err)
		}

		ctl := controller.New()
		if _, err := ctl.NewDocument(adapter.Format()); err != nil {
			return Logger.ErrorfAndReturn("failed to create document: %v", err)
		}
		if err := ctl.SaveAs(configFile); err != nil {
			return Logger.ErrorfAndReturn("failed to write %s: %v", configFile, err)
		}

		spinner.FinalMSG = color.GreenString("✓") + " Created " + ui.Path.Sprint(configFile) + "\n" +
			color.CyanString("→") + " Run " + color.YellowString("suicfg show --file "+configFile) + " to inspect it"
		return nil
	},
}

func init() {
	registerEditorFlags(NewCmd)
}
