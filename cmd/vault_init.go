package cmd

import (
	"context"
	"errors"
	"fmt"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/ui"
	"github.com/zarf0128-creator/NebulaVault/internal/workflows"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var (
	initName   string
	initOrigin string
)

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "name for the vault (defaults to the directory name)")
	initCmd.Flags().StringVar(&initOrigin, "origin", "", "origin used in share links, e.g. https://vault.example.com")
}

func resetInitCommandState() {
	initName = ""
	initOrigin = ""
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a vault in the current directory",
	Long: `Creates the .nebula directory, the record database, and your profile.

A fresh random salt is generated and stored; your master key is derived from
your password and this salt at every login and is never written anywhere.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		spinner, cleanup := startSpinner("Initializing vault...", verbose)
		defer cleanup()

		result, err := workflows.Init(context.Background(), workflows.InitOptions{
			VaultName: initName,
			Origin:    initOrigin,
		})
		if errors.Is(err, nverrors.ErrVaultAlreadyInitialized) {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " A vault already exists here\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("nebula vault status") + " to inspect it"
			return nil
		}
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to initialize vault: " + err.Error()
			return err
		}

		// Stop spinner before printing the banner.
		spinner.Stop()
		fmt.Println()
		banner := figure.NewColorFigure("Nebula", "alligator2", "purple", true)
		banner.Print()
		fmt.Println()

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Vault " + ui.Highlight.Sprint(result.VaultName) + " initialized for " + ui.Highlight.Sprint(result.UserID) + "\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("nebula vault upload <file>") + " to store your first file"
		return nil
	},
}
