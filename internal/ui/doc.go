// Package ui provides semantic text formatting for CLI output.
//
// Formatters render according to terminal capabilities: colorized when
// colors are available, with plain-text decorations (quotes, parentheses)
// when NO_COLOR is set or the terminal cannot do colors.
//
//	ui.Success.Sprint("✓")                    // Success indicators
//	ui.Error.Sprint("✗")                      // Error indicators
//	ui.Path.Sprint("PysuiConfig.json")        // File paths
//	ui.Highlight.Sprint("mainnet")            // User values (names, aliases)
//	ui.Muted.Sprint("inactive")               // De-emphasized text
//
// The package also renders the three aligned tables the show command
// prints: groups, profiles and identities.
package ui
