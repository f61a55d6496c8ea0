package cmd

import (
	logger "github.com/zarf0128-creator/NebulaVault/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	VaultCmd = &cobra.Command{
		Use:   "vault",
		Short: "Manage encrypted files and share links",
		Long:  `Provides encryption, storage, sharing, and retrieval of files. All content is encrypted client-side; the vault never holds a usable key at rest.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing vault command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	VaultCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	VaultCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	VaultCmd.AddCommand(initCmd)
	VaultCmd.AddCommand(uploadCmd)
	VaultCmd.AddCommand(downloadCmd)
	VaultCmd.AddCommand(listCmd)
	VaultCmd.AddCommand(removeCmd)
	VaultCmd.AddCommand(shareCmd)
	VaultCmd.AddCommand(redeemCmd)
	VaultCmd.AddCommand(rotateCmd)
	VaultCmd.AddCommand(doctorCmd)
	VaultCmd.AddCommand(statusCmd)
}

// Helper functions for testing

// GetVaultCmd returns the VaultCmd for testing.
func GetVaultCmd() *cobra.Command {
	return VaultCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetInitCommandState()
	resetUploadCommandState()
	resetDownloadCommandState()
	resetShareCommandState()
	resetRedeemCommandState()
	resetRotateCommandState()
	resetDoctorCommandState()
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
