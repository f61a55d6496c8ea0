package cmd

import (
	"context"
	"errors"
	"fmt"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/ui"
	"github.com/zarf0128-creator/NebulaVault/internal/workflows"

	"github.com/spf13/cobra"
)

var sharePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete expired and exhausted shares",
	RunE: func(cmd *cobra.Command, args []string) error {
		spinner, cleanup := startSpinner("Pruning dead shares...", verbose)
		defer cleanup()

		result, err := workflows.SharePrune(context.Background())
		switch {
		case errors.Is(err, nverrors.ErrVaultNotInitialized):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " No vault found"
			return nil
		case err != nil:
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to prune shares: " + err.Error()
			return err
		}

		if result.Pruned == 0 {
			spinner.FinalMSG = ui.Info.Sprint("→") + " Nothing to prune"
			return nil
		}
		spinner.FinalMSG = ui.Success.Sprint("✓") + fmt.Sprintf(" Pruned %d share(s)", result.Pruned)
		return nil
	},
}
