// Package ui provides semantic text formatting for CLI output.
//
// Formatters render appropriately based on terminal capabilities. When colors
// are available the content is colorized; when NO_COLOR is set or the
// terminal does not support colors, text-based decorations (backticks,
// quotes) are used instead.
//
//	ui.Code.Sprint("tablet keygen")        // Commands
//	ui.Path.Sprint("ancient_wisdoms.tbl")  // File paths
//	ui.Success.Sprint("✓")                  // Success indicators
//	ui.Error.Sprint("✗")                    // Error indicators
//	ui.Info.Sprint("→")                     // Hints
//	ui.Highlight.Sprint(proverb.Text)      // Emphasized values
//	ui.Muted.Sprint("optional")            // De-emphasized text
package ui
