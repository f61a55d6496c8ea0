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

var removeCmd = &cobra.Command{
	Use:     "rm <filename>",
	Aliases: []string{"remove"},
	Short:   "Delete a stored file and its shares",
	Long: `Deletes a stored file: its metadata, its ciphertext, and every share
pointing at it. Outstanding share links for the file stop working immediately.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spinner, cleanup := startSpinner("Removing "+args[0]+"...", verbose)
		defer cleanup()

		result, err := workflows.Remove(context.Background(), workflows.RemoveOptions{Filename: args[0]})
		switch {
		case errors.Is(err, nverrors.ErrFileNotFound):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " No file named " + ui.Highlight.Sprint(args[0]) + " is stored"
			return nil
		case err != nil:
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to remove: " + err.Error()
			return err
		}

		msg := ui.Success.Sprint("✓") + " Removed " + ui.Highlight.Sprint(result.Record.Filename)
		if result.SharesDeleted > 0 {
			msg += " " + ui.Muted.Sprint(fmt.Sprintf("%d share(s) invalidated", result.SharesDeleted))
		}
		spinner.FinalMSG = msg
		return nil
	},
}
