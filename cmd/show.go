package cmd

import (
	"fmt"
	"os"

	"github.com/termsui/suicfg/internal/model"
	"github.com/termsui/suicfg/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showGroup string

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display a configuration file",
	Long: `Displays the groups, profiles and identities of a configuration file.

For a primary document the profiles and identities of the active group are
shown; use --group to inspect another group. Client documents show their
environments and keystore.

Examples:
  # Show the active group
  suicfg show --file sui_config.toml

  # Show a specific group
  suicfg show --file sui_config.toml --group ops`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting show command")
		_, doc, err := openDocument()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		if doc.Client != nil {
			return showClient(doc.Client)
		}
		return showPrimary(doc)
	},
}

func init() {
	registerEditorFlags(ShowCmd)
	ShowCmd.Flags().StringVarP(&showGroup, "group", "g", "", "group to display instead of the active one")
}

func showPrimary(doc *model.Document) error {
	group := doc.ActiveGroup()
	if showGroup != "" {
		g, err := doc.FindGroup(showGroup)
		if err != nil {
			return Logger.ErrorfAndReturn("group %q not found", showGroup)
		}
		group = g
	}

	rows := make([][]string, 0, len(doc.Primary.Groups))
	for _, g := range doc.Primary.Groups {
		rows = append(rows, []string{g.Name, ui.YesNo(g.Active)})
	}
	fmt.Println(color.GreenString("Groups"))
	if err := ui.RenderTable(os.Stdout, []string{"Name", "Active"}, rows); err != nil {
		return err
	}

	if group == nil {
		return nil
	}

	rows = rows[:0]
	for _, p := range group.Profiles {
		rows = append(rows, []string{p.Name, p.RPCURL, p.GraphQLURL, p.GRPCURL, ui.YesNo(p.Active)})
	}
	fmt.Println()
	fmt.Println(color.GreenString("Profiles") + " " + ui.Muted.Sprint(group.Name))
	if err := ui.RenderTable(os.Stdout, []string{"Name", "RPC URL", "GraphQL URL", "gRPC URL", "Active"}, rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, id := range group.Identities {
		rows = append(rows, []string{id.Alias, string(id.Curve), id.Address, ui.YesNo(id.Active)})
	}
	fmt.Println()
	fmt.Println(color.GreenString("Identities") + " " + ui.Muted.Sprint(group.Name))
	return ui.RenderTable(os.Stdout, []string{"Alias", "Curve", "Address", "Active"}, rows)
}

func showClient(client *model.ClientConfig) error {
	rows := make([][]string, 0, len(client.Envs))
	for _, e := range client.Envs {
		rows = append(rows, []string{e.Alias, e.RPC, ui.YesNo(e.Active)})
	}
	fmt.Println(color.GreenString("Environments"))
	if err := ui.RenderTable(os.Stdout, []string{"Alias", "RPC", "Active"}, rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, k := range client.Keys {
		rows = append(rows, []string{k.Alias, k.PublicKey, ui.YesNo(k.Active)})
	}
	fmt.Println()
	fmt.Println(color.GreenString("Keystore"))
	return ui.RenderTable(os.Stdout, []string{"Alias", "Public Key", "Active"}, rows)
}
