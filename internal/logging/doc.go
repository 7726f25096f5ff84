// Package logger provides leveled logging for tablet CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is prefixed with a colored severity tag.
//
// # Verbosity Levels
//
//   - --verbose: shows info and warning messages
//   - --debug: shows all messages including debug details
//
// Without flags, only user-facing warnings and errors are shown.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Shown with --verbose or --debug
//	Logger.WarnfUser()       // Always shown (user-facing warnings)
//	Logger.Errorf()          // Always shown
//	Logger.ErrorfAndReturn() // Logs and returns the error
//
// Commands create a logger in their PersistentPreRun from the persistent
// flag values and use it for the rest of the run.
//
// The archive key value is never passed to any log method.
package logger
