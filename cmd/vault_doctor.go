package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/ui"
	"github.com/zarf0128-creator/NebulaVault/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	doctorJSONOutput bool
	// doctorExitFunc is the function called to exit with a specific code.
	// Can be overridden for testing.
	doctorExitFunc = os.Exit
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSONOutput, "json", false, "output in JSON format")
}

func resetDoctorCommandState() {
	doctorJSONOutput = false
	doctorExitFunc = os.Exit
}

// SetDoctorExitFunc sets the exit function for testing purposes.
func SetDoctorExitFunc(f func(int)) {
	doctorExitFunc = f
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run health checks on the vault",
	Long: `Runs a series of read-only health checks on the vault and reports issues.

The doctor command checks:
  - Vault configuration validity
  - Profile salt shape
  - Every file record's encoded fields
  - Every file's ciphertext blob presence
  - Every share record's counters and wrapped key

Exit codes:
  0 - All checks passed
  1 - Warnings found (non-critical issues)
  2 - Errors found (critical issues)

Use --json for machine-readable output.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting doctor command")

	spinner, cleanup := startSpinner("Running health checks...", verbose)
	defer cleanup()

	result, err := workflows.Doctor(context.Background())
	if errors.Is(err, nverrors.ErrVaultNotInitialized) {
		spinner.FinalMSG = ui.Error.Sprint("✗") + " No vault found\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("nebula vault init") + " first"
		return nil
	}
	if err != nil {
		spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to run health checks: " + err.Error()
		return err
	}

	for _, check := range result.Checks {
		Logger.Debugf("Check %s: status=%s, message=%s", check.Name, check.Status.String(), check.Message)
	}

	if doctorJSONOutput {
		spinner.FinalMSG = ""
		if err := outputDoctorJSON(result); err != nil {
			return err
		}
	} else {
		printDoctorResults(result)
		if result.Summary.Errors > 0 {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Health checks completed with errors"
		} else if result.Summary.Warnings > 0 {
			spinner.FinalMSG = ui.Warning.Sprint("⚠") + " Health checks completed with warnings"
		} else {
			spinner.FinalMSG = ui.Success.Sprint("✓") + " Health checks completed"
		}
	}

	// Set exit code based on results.
	if result.Summary.Errors > 0 {
		doctorExitFunc(2)
	} else if result.Summary.Warnings > 0 {
		doctorExitFunc(1)
	}
	return nil
}

// outputDoctorJSON outputs the result as JSON.
func outputDoctorJSON(result *workflows.DoctorResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// printDoctorResults prints the doctor results in a human-readable format.
func printDoctorResults(result *workflows.DoctorResult) {
	fmt.Println()
	for _, check := range result.Checks {
		var statusIcon string
		switch check.Status {
		case workflows.CheckPass:
			statusIcon = ui.Success.Sprint("✓")
		case workflows.CheckWarning:
			statusIcon = ui.Warning.Sprint("⚠")
		case workflows.CheckError:
			statusIcon = ui.Error.Sprint("✗")
		}
		fmt.Printf("%s %s: %s\n", statusIcon, check.Name, check.Message)
		if check.Suggestion != "" {
			fmt.Printf("  %s %s\n", ui.Info.Sprint("→"), check.Suggestion)
		}
	}
	fmt.Println()
	fmt.Printf("%d passed, %d warnings, %d errors\n", result.Summary.Passed, result.Summary.Warnings, result.Summary.Errors)
}
