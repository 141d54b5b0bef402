package main

import (
	"fmt"
	"os"

	"github.com/benvon/identity-gateway/cmd/tokenctl/commands"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "tokenctl",
		Short: "Session token tool for the identity gateway",
		Long:  "CLI tool for minting and inspecting session tokens with the gateway's configured secret",
	}

	rootCmd.AddCommand(commands.NewMintCmd())
	rootCmd.AddCommand(commands.NewInspectCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
