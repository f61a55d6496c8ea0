package main

import (
	"fmt"
	"os"

	"github.com/zarf0128-creator/NebulaVault/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nebula",
	Short: "Nebula - client-side encrypted file storage and sharing.",
	Long: `Nebula is a command-line tool for storing files encrypted end to end and
sharing them through self-contained links.

All encryption happens on your machine. The vault holds only ciphertext,
wrapped keys, and hashes; without your password or a share link, nothing in
it can be read.

Usage:
  nebula <command> [flags]

Available Commands:
  vault      Manage encrypted files and share links

Run 'nebula help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to Nebula! Run 'nebula --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.VaultCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
