package cmd

import (
	"context"
	"errors"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/ui"
	"github.com/zarf0128-creator/NebulaVault/internal/utils"
	"github.com/zarf0128-creator/NebulaVault/internal/workflows"

	"github.com/spf13/cobra"
)

var uploadPasswordStdin bool

func init() {
	uploadCmd.Flags().BoolVar(&uploadPasswordStdin, "password-stdin", false, "read the vault password from stdin")
}

func resetUploadCommandState() {
	uploadPasswordStdin = false
}

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Encrypt a file into the vault",
	Long: `Encrypts a file under a fresh key and stores only the ciphertext.

The file key is wrapped under your master key; neither ever touches disk in
usable form. The plaintext hash is stored so later downloads can verify
integrity.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd, uploadPasswordStdin)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read password: %v", err)
		}

		spinner, cleanup := startSpinner("Encrypting "+args[0]+"...", verbose)
		defer cleanup()

		result, err := workflows.Upload(context.Background(), workflows.UploadOptions{
			FilePath: args[0],
			Password: password,
		})
		switch {
		case errors.Is(err, nverrors.ErrVaultNotInitialized):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " No vault found\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("nebula vault init") + " first"
			return nil
		case errors.Is(err, nverrors.ErrFileExists):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " A file with this name is already stored\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("nebula vault rm") + " first, or rename the file"
			return nil
		case err != nil:
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to upload: " + err.Error()
			return err
		}

		rec := result.Record
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Stored " + ui.Highlight.Sprint(rec.Filename) + " " + ui.Muted.Sprint(utils.FormatBytes(rec.FileSize)) + "\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("nebula vault share create "+rec.Filename) + " to share it"
		return nil
	},
}
