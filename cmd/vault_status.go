package cmd

import (
	"context"
	"errors"
	"fmt"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/ui"
	"github.com/zarf0128-creator/NebulaVault/internal/utils"
	"github.com/zarf0128-creator/NebulaVault/internal/workflows"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a snapshot of the vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := workflows.Status(context.Background())
		if errors.Is(err, nverrors.ErrVaultNotInitialized) {
			fmt.Println(ui.Error.Sprint("✗") + " No vault found")
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("nebula vault init") + " first")
			return nil
		}
		if err != nil {
			return Logger.ErrorfAndReturn("failed to get status: %v", err)
		}

		fmt.Printf("Vault:  %s %s\n", ui.Highlight.Sprint(result.VaultName), ui.Muted.Sprint(result.VaultUUID))
		fmt.Printf("Files:  %d %s\n", result.Files, ui.Muted.Sprint(utils.FormatBytes(result.TotalSize)))
		fmt.Printf("Shares: %s active, %s exhausted, %s expired\n",
			ui.Success.Sprintf("%d", result.Shares.Active),
			ui.Muted.Sprintf("%d", result.Shares.Exhausted),
			ui.Warning.Sprintf("%d", result.Shares.Expired))
		return nil
	},
}
