package cmd

import (
	"context"
	"errors"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/ui"
	"github.com/zarf0128-creator/NebulaVault/internal/workflows"

	"github.com/spf13/cobra"
)

var shareRevokeCmd = &cobra.Command{
	Use:   "revoke <share-id>",
	Short: "Revoke a share link",
	Long: `Revokes a share link immediately.

The share record is deleted; anyone holding the link gets "not found" from
then on, regardless of remaining downloads or expiry.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spinner, cleanup := startSpinner("Revoking share...", verbose)
		defer cleanup()

		result, err := workflows.ShareRevoke(context.Background(), workflows.ShareRevokeOptions{ShareID: args[0]})
		switch {
		case errors.Is(err, nverrors.ErrShareNotFound):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " No share with id " + ui.Highlight.Sprint(args[0]) + " exists\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("nebula vault share ls") + " to see share ids"
			return nil
		case err != nil:
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to revoke share: " + err.Error()
			return err
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Revoked share " + ui.Highlight.Sprint(result.ShareID)
		return nil
	},
}
