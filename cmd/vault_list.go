package cmd

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/ui"
	"github.com/zarf0128-creator/NebulaVault/internal/utils"
	"github.com/zarf0128-creator/NebulaVault/internal/workflows"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List stored files",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := workflows.List(context.Background())
		if errors.Is(err, nverrors.ErrVaultNotInitialized) {
			fmt.Println(ui.Error.Sprint("✗") + " No vault found")
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("nebula vault init") + " first")
			return nil
		}
		if err != nil {
			return Logger.ErrorfAndReturn("failed to list files: %v", err)
		}

		if len(result.Files) == 0 {
			fmt.Println(ui.Info.Sprint("→") + " The vault is empty")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSIZE\tTYPE\tUPLOADED")
		for _, f := range result.Files {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Filename, utils.FormatBytes(f.FileSize), f.MimeType, f.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}
