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

var (
	downloadOutput        string
	downloadPasswordStdin bool
)

func init() {
	downloadCmd.Flags().StringVarP(&downloadOutput, "output", "o", "", "write the file to this path instead of its stored name")
	downloadCmd.Flags().BoolVar(&downloadPasswordStdin, "password-stdin", false, "read the vault password from stdin")
}

func resetDownloadCommandState() {
	downloadOutput = ""
	downloadPasswordStdin = false
}

var downloadCmd = &cobra.Command{
	Use:   "download <filename>",
	Short: "Decrypt a stored file",
	Long: `Decrypts a stored file and verifies its content hash before writing.

A hash mismatch means the stored ciphertext was corrupted or tampered with;
nothing is written in that case.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd, downloadPasswordStdin)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read password: %v", err)
		}

		spinner, cleanup := startSpinner("Decrypting "+args[0]+"...", verbose)
		defer cleanup()

		output := downloadOutput
		if output == "" {
			output = args[0]
		}

		result, err := workflows.Download(context.Background(), workflows.DownloadOptions{
			Filename:   args[0],
			OutputPath: output,
			Password:   password,
		})
		switch {
		case errors.Is(err, nverrors.ErrFileNotFound):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " No file named " + ui.Highlight.Sprint(args[0]) + " is stored\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("nebula vault ls") + " to see stored files"
			return nil
		case errors.Is(err, nverrors.ErrWrongPassword):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Wrong password"
			return nil
		case errors.Is(err, nverrors.ErrIntegrityMismatch):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Integrity check failed: the stored content does not match its hash\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("nebula vault doctor") + " to inspect the vault"
			return err
		case err != nil:
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to download: " + err.Error()
			return err
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Wrote " + ui.Path.Sprint(output) + " " + ui.Muted.Sprint("verified, "+utils.FormatBytes(result.Record.FileSize))
		return nil
	},
}
