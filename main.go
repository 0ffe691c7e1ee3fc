package main

import (
	"fmt"
	"os"

	"github.com/termsui/suicfg/cmd"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "suicfg",
	Short: "suicfg - A CLI for editing Sui configuration files.",
	Long: `suicfg edits Sui configuration documents without touching the network:
profile groups, RPC profiles, and signing identities in one place.

Features:
  - Manage profile groups, RPC profiles, and identities
  - Generate ed25519, secp256k1, and secp256r1 identities offline
  - Read and write JSON, TOML, and client YAML documents

Usage:
  suicfg <command> [flags]

Available Commands:
  new        Create a configuration file seeded with defaults
  show       Display a configuration file
  save-as    Write a configuration to a new path
  group      Manage profile groups
  profile    Manage RPC profiles
  identity   Manage signing identities

Run 'suicfg help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		myFigure := figure.NewColorFigure("suicfg", "alligator2", "green", true)
		myFigure.Print()
		fmt.Println()
		fmt.Println("Welcome to suicfg! Run 'suicfg --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.NewCmd)
	rootCmd.AddCommand(cmd.ShowCmd)
	rootCmd.AddCommand(cmd.SaveAsCmd)
	rootCmd.AddCommand(cmd.GroupCmd)
	rootCmd.AddCommand(cmd.ProfileCmd)
	rootCmd.AddCommand(cmd.IdentityCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
