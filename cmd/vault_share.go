package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Manage share links",
	Long: `Creates, lists, revokes, and prunes share links.

A share link carries its own key in the URL fragment; the vault stores only
the wrapped copy, so the full link is the sole credential. Losing it means
losing access to that share.`,
}

func init() {
	shareCmd.AddCommand(shareCreateCmd)
	shareCmd.AddCommand(shareListCmd)
	shareCmd.AddCommand(shareRevokeCmd)
	shareCmd.AddCommand(sharePruneCmd)
}

func resetShareCommandState() {
	shareLimit = 1
	shareTTL = 24 * time.Hour
	sharePasswordStdin = false
}
