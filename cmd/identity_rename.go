package cmd

import (
	"github.com/termsui/suicfg/internal/engine"
	"github.com/termsui/suicfg/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var identityRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a signing identity",
	Long: `Renames an identity. The key material is untouched: the public key,
keystring and address stay exactly as they were.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting identity rename command")
		ctl, doc, err := openDocument()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		change, err := applyAndSave(ctl, doc, engine.EditIdentityAlias{
			Scope: resolveScope(doc, identityGroup),
			Old:   args[0],
			New:   args[1],
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to rename identity: %v", err)
		}

		cmd.Print(color.GreenString("✓") + " Renamed identity " + ui.Highlight.Sprint(args[0]) +
			" to " + ui.Highlight.Sprint(change.Name) + "\n")
		return nil
	},
}
