package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - maxima
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for section headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleValue for vertex identifiers.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for scores and distances.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleTop marks vertices tied for the maximum.
	StyleTop = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleSuccess for passed checks.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

const (
	iconSuccess = "✓"
	iconTop     = "★"
)

// formatScore renders a centrality value with fixed precision.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// printTitle writes a styled heading line.
func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, StyleTitle.Render(title))
}

// printKeyValue writes "  key  value" with a dimmed key.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintf(w, "  %s %s\n", StyleDim.Render(fmt.Sprintf("%-8s", key)), value)
}

// printDetail writes a dimmed trailing line such as a count.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf(format, args...)))
}
