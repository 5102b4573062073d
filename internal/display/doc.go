// Package display renders search results for the terminal.
//
// # Result Lines
//
// Each matching line is printed as "<number>: <text>" with the line number in
// green and every matched span in red:
//
//	f := display.NewFormatter(os.Stdout, true)
//	f.WriteLines(fileResult.Lines)
//
// In directory mode each file's block starts with its path relative to the scan
// root, printed in blue, and blocks are separated by a blank line:
//
//	f.WriteFile(treeResult.Root, fileResult)
//
// # Color Modes
//
// ResolveColor maps the --color setting to a yes/no decision:
//
//	useColor, err := display.ResolveColor("auto", os.Stdout)
//
// "auto" enables color only when the writer is a terminal and NO_COLOR is unset.
//
// # Summaries and Warnings
//
// Summary prints match totals after a scan, and Warning lists files that were
// skipped because they could not be read.
package display
