package cmd

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/share"
	"github.com/zarf0128-creator/NebulaVault/internal/ui"
	"github.com/zarf0128-creator/NebulaVault/internal/workflows"

	"github.com/spf13/cobra"
)

var shareListCmd = &cobra.Command{
	Use:     "ls [<filename>]",
	Aliases: []string{"list"},
	Short:   "List share links and their states",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts workflows.ShareListOptions
		if len(args) == 1 {
			opts.Filename = args[0]
		}

		result, err := workflows.ShareList(context.Background(), opts)
		if errors.Is(err, nverrors.ErrVaultNotInitialized) {
			fmt.Println(ui.Error.Sprint("✗") + " No vault found")
			return nil
		}
		if errors.Is(err, nverrors.ErrFileNotFound) {
			fmt.Println(ui.Error.Sprint("✗") + " No file named " + ui.Highlight.Sprint(opts.Filename) + " is stored")
			return nil
		}
		if err != nil {
			return Logger.ErrorfAndReturn("failed to list shares: %v", err)
		}

		if len(result.Shares) == 0 {
			fmt.Println(ui.Info.Sprint("→") + " No shares exist")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tFILE\tSTATE\tDOWNLOADS\tEXPIRES")
		for _, info := range result.Shares {
			filename := info.Filename
			if filename == "" {
				filename = ui.Muted.Sprint("deleted")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%s\n",
				info.Share.ID,
				filename,
				formatShareState(info.State),
				info.Share.DownloadCount, info.Share.UsageLimit,
				info.Share.ExpiresAt.Local().Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

func formatShareState(state share.State) string {
	switch state {
	case share.StateActive:
		return ui.Success.Sprint(string(state))
	case share.StateExpired:
		return ui.Warning.Sprint(string(state))
	case share.StateExhausted:
		return ui.Muted.Sprint(string(state))
	default:
		return string(state)
	}
}
