package cmd

import (
	"github.com/termsui/suicfg/internal/engine"
	"github.com/termsui/suicfg/internal/model"
	"github.com/termsui/suicfg/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	identityAddCurve    string
	identityAddActivate bool
)

var identityAddCmd = &cobra.Command{
	Use:   "add <alias>",
	Short: "Generate and add a new signing identity",
	Long: `Generates a fresh key pair and adds it under the given alias.

Supported curves are ed25519, secp256k1 and secp256r1. The private key is
never written anywhere; the document stores the public keystring and the
derived address.

Examples:
  suicfg identity add deployer --file sui_config.toml
  suicfg identity add backup --curve secp256k1 --activate --file sui_config.toml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting identity add command")
		ctl, doc, err := openDocument()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		spinner, cleanup := startSpinner("Generating key pair...")
		defer cleanup()

		scope := resolveScope(doc, identityGroup)
		change, err := applyAndSave(ctl, doc, engine.AddIdentity{
			Scope:      scope,
			Alias:      args[0],
			Curve:      model.Curve(identityAddCurve),
			MakeActive: identityAddActivate,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to add identity: %v", err)
		}

		msg := color.GreenString("✓") + " Added identity " + ui.Highlight.Sprint(change.Name) + "\n"
		if doc.Primary != nil {
			if group, err := doc.FindGroup(scope); err == nil {
				if id, err := group.FindIdentity(change.Name); err == nil {
					msg += color.CyanString("→") + " Address: " + ui.Path.Sprint(id.Address) + "\n"
				}
			}
		}
		spinner.FinalMSG = msg + sideEffects(change)
		return nil
	},
}

func init() {
	identityAddCmd.Flags().StringVar(&identityAddCurve, "curve", string(model.CurveEd25519), "signature curve: ed25519, secp256k1 or secp256r1")
	identityAddCmd.Flags().BoolVar(&identityAddActivate, "activate", false, "make the new identity active")
}
