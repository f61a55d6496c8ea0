// Package logger provides leveled logging for NebulaVault CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with semantic color prefixes.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Warnings and errors are shown regardless of flags.
//
// # Log Methods
//
//	Logger.Infof()            // Shown with --verbose or --debug
//	Logger.Debugf()           // Shown only with --debug
//	Logger.Warnf()            // Always shown
//	Logger.WarnfAlways()      // Always shown (critical warnings)
//	Logger.Errorf()           // Always shown
//	Logger.ErrorfAndReturn()  // Logs and returns the error
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Encrypting %d bytes", size)
//
// Commands typically create a logger in their PersistentPreRun and
// pass it to internal functions.
package logger
