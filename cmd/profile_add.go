package cmd

import (
	"github.com/termsui/suicfg/internal/engine"
	"github.com/termsui/suicfg/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	profileAddRPCURL     string
	profileAddGraphQLURL string
	profileAddGRPCURL    string
	profileAddActivate   bool
)

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new RPC profile",
	Long: `Adds an RPC profile to a group, or an environment to a client
configuration.

Examples:
  suicfg profile add testnet --rpc-url https://fullnode.testnet.sui.io:443 --file sui_config.toml
  suicfg profile add localnet --rpc-url http://localhost:9000 --group ops --activate --file sui_config.toml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting profile add command")
		ctl, doc, err := openDocument()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		change, err := applyAndSave(ctl, doc, engine.AddProfile{
			Group:      resolveScope(doc, profileGroup),
			Name:       args[0],
			RPCURL:     profileAddRPCURL,
			GraphQLURL: profileAddGraphQLURL,
			GRPCURL:    profileAddGRPCURL,
			MakeActive: profileAddActivate,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to add profile: %v", err)
		}

		cmd.Print(color.GreenString("✓") + " Added profile " + ui.Highlight.Sprint(change.Name) + "\n" + sideEffects(change))
		return nil
	},
}

func init() {
	profileAddCmd.Flags().StringVar(&profileAddRPCURL, "rpc-url", "", "JSON-RPC endpoint of the profile")
	profileAddCmd.Flags().StringVar(&profileAddGraphQLURL, "graphql-url", "", "GraphQL endpoint of the profile")
	profileAddCmd.Flags().StringVar(&profileAddGRPCURL, "grpc-url", "", "gRPC endpoint of the profile")
	profileAddCmd.Flags().BoolVar(&profileAddActivate, "activate", false, "make the new profile active")
	if err := profileAddCmd.MarkFlagRequired("rpc-url"); err != nil {
		panic(err)
	}
}
