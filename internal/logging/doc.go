// Package logger provides leveled logging for suicfg CLI commands.
//
// Verbosity is controlled by two flags:
//
//   - --verbose: shows info messages
//   - --debug: shows debug messages
//
// Warnings and errors are always shown, on stderr. The core packages never
// log on their own; every error is a typed result the command layer turns
// into output here.
//
// Commands create a logger in their PersistentPreRun from the flag values
// and pass it to whatever needs it.
package logger
