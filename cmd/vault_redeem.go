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

var redeemOutput string

func init() {
	redeemCmd.Flags().StringVarP(&redeemOutput, "output", "o", "", "write the file to this path instead of its shared name")
}

func resetRedeemCommandState() {
	redeemOutput = ""
}

var redeemCmd = &cobra.Command{
	Use:   "redeem <url>",
	Short: "Download a shared file through its link",
	Long: `Downloads a file through a share link. No vault password is needed; the
key in the link's fragment is the only credential.

Each successful download consumes one use of the share. Quote the URL in
your shell so the fragment survives.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spinner, cleanup := startSpinner("Redeeming share link...", verbose)
		defer cleanup()

		result, err := workflows.Redeem(context.Background(), workflows.RedeemOptions{
			URL:        args[0],
			OutputPath: redeemOutput,
		})
		switch {
		case errors.Is(err, nverrors.ErrMissingKeyFragment):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " The link has no key fragment\n" +
				ui.Info.Sprint("→") + " Paste the full link including everything after " + ui.Code.Sprint("#") + ", quoted"
			return nil
		case errors.Is(err, nverrors.ErrShareNotFound):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " This share does not exist or was revoked"
			return nil
		case errors.Is(err, nverrors.ErrShareExpired):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " This share has expired"
			return nil
		case errors.Is(err, nverrors.ErrShareExhausted):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " This share has reached its download limit"
			return nil
		case errors.Is(err, nverrors.ErrAuthenticationFailure):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " The key in the link does not unlock this share\n" +
				ui.Info.Sprint("→") + " The link may be truncated or corrupted"
			return nil
		case errors.Is(err, nverrors.ErrIntegrityMismatch):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Integrity check failed: the content does not match its hash"
			return err
		case err != nil:
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to redeem: " + err.Error()
			return err
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Wrote " + ui.Path.Sprint(result.OutputPath) + " " +
			ui.Muted.Sprint(fmt.Sprintf("verified, %d download(s) left", result.Remaining))
		return nil
	},
}
