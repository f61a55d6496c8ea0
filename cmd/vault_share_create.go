package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/ui"
	"github.com/zarf0128-creator/NebulaVault/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	shareLimit         int
	shareTTL           time.Duration
	sharePasswordStdin bool
)

func init() {
	shareCreateCmd.Flags().IntVar(&shareLimit, "limit", 1, "maximum number of downloads")
	shareCreateCmd.Flags().DurationVar(&shareTTL, "ttl", 24*time.Hour, "how long the link stays valid, e.g. 30m, 12h, 168h")
	shareCreateCmd.Flags().BoolVar(&sharePasswordStdin, "password-stdin", false, "read the vault password from stdin")
}

var shareCreateCmd = &cobra.Command{
	Use:   "create <filename>",
	Short: "Create a share link for a stored file",
	Long: `Creates a share link for a stored file.

The file key is re-wrapped under a fresh share key that exists only in the
printed link's fragment. Recipients never learn your password or master key,
and revoking the share never affects your own access.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd, sharePasswordStdin)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read password: %v", err)
		}

		spinner, cleanup := startSpinner("Creating share link...", verbose)
		defer cleanup()

		result, err := workflows.ShareCreate(context.Background(), workflows.ShareCreateOptions{
			Filename:   args[0],
			UsageLimit: shareLimit,
			TTL:        shareTTL,
			Password:   password,
		})
		switch {
		case errors.Is(err, nverrors.ErrFileNotFound):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " No file named " + ui.Highlight.Sprint(args[0]) + " is stored"
			return nil
		case errors.Is(err, nverrors.ErrWrongPassword):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Wrong password"
			return nil
		case errors.Is(err, nverrors.ErrInvalidInput):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
				ui.Info.Sprint("→") + " " + ui.Flag.Sprint("--limit") + " must be at least 1 and " + ui.Flag.Sprint("--ttl") + " must be positive"
			return nil
		case err != nil:
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to create share: " + err.Error()
			return err
		}

		expires := result.Share.ExpiresAt.Local().Format("2006-01-02 15:04")
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Share created " + ui.Muted.Sprint(fmt.Sprintf("%d download(s), expires %s", result.Share.UsageLimit, expires)) + "\n" +
			"  " + result.URL + "\n" +
			ui.Warning.Sprint("⚠") + " This link is the only copy of the share key; it cannot be recovered"
		return nil
	},
}
