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

var rotatePasswordStdin bool

func init() {
	rotateCmd.Flags().BoolVar(&rotatePasswordStdin, "password-stdin", false, "read the vault password from stdin")
}

func resetRotateCommandState() {
	rotatePasswordStdin = false
}

var rotateCmd = &cobra.Command{
	Use:   "rotate <filename>",
	Short: "Rotate a file's key and invalidate its shares",
	Long: `Re-encrypts a stored file under a fresh key.

Every existing share of the file is deleted: their wrapped copies of the old
key become useless the moment the content is re-encrypted. Create new shares
afterwards if needed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd, rotatePasswordStdin)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read password: %v", err)
		}

		spinner, cleanup := startSpinner("Rotating key for "+args[0]+"...", verbose)
		defer cleanup()

		result, err := workflows.Rotate(context.Background(), workflows.RotateOptions{
			Filename: args[0],
			Password: password,
		})
		switch {
		case errors.Is(err, nverrors.ErrFileNotFound):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " No file named " + ui.Highlight.Sprint(args[0]) + " is stored"
			return nil
		case errors.Is(err, nverrors.ErrWrongPassword):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Wrong password"
			return nil
		case err != nil:
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to rotate: " + err.Error()
			return err
		}

		msg := ui.Success.Sprint("✓") + " Rotated key for " + ui.Highlight.Sprint(result.Record.Filename)
		if result.SharesDeleted > 0 {
			msg += " " + ui.Muted.Sprint(fmt.Sprintf("%d share(s) invalidated", result.SharesDeleted))
		}
		spinner.FinalMSG = msg
		return nil
	},
}
