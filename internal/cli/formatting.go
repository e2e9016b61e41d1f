package cli

import (
	"io"

	"github.com/arthur-debert/futils/pkg/ui"
	"github.com/arthur-debert/futils/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// formatBold returns the string formatted as bold using pterm
func formatBold(w io.Writer, s string) string {
	// Only apply formatting if output is a terminal
	if ui.DetectFormat(w) != ui.FormatTerminal {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// render applies a named style when w is a color terminal
func render(w io.Writer, style, s string) string {
	if ui.DetectFormat(w) != ui.FormatTerminal {
		return s
	}
	return styles.Render(style, s)
}
