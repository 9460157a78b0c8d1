package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/inkwell/pkg/hexcolor"
	"github.com/matzehuels/inkwell/pkg/render/sink"
)

// =============================================================================
// Colors
// =============================================================================

// Output colors follow the ink palette: the default signature blue for
// accents and muted slate tones for everything secondary.
var (
	colorInk    = lipgloss.Color(hexcolor.DefaultColor)
	colorMoss   = lipgloss.Color("#22c55e")
	colorAmber  = lipgloss.Color("#f59e0b")
	colorRust   = lipgloss.Color("#ef4444")
	colorPaper  = lipgloss.Color("#f8fafc")
	colorSlate  = lipgloss.Color("#94a3b8")
	colorShadow = lipgloss.Color("#64748b")
)

// =============================================================================
// Styles
// =============================================================================

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorInk)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorInk)
	StyleNumber    = lipgloss.NewStyle().Foreground(colorInk)
	StyleValue     = lipgloss.NewStyle().Foreground(colorPaper)
	StyleDim       = lipgloss.NewStyle().Foreground(colorShadow)
	StyleSuccess   = lipgloss.NewStyle().Foreground(colorMoss)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorAmber)

	styleIconError   = lipgloss.NewStyle().Foreground(colorRust)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorInk)
	styleLabel       = lipgloss.NewStyle().Foreground(colorSlate).Width(12)
	styleCommand     = lipgloss.NewStyle().Foreground(colorInk).Italic(true)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printStatus(icon string, style lipgloss.Style, msg string) {
	fmt.Println(style.Render(icon) + " " + msg)
}

func printSuccess(format string, args ...any) {
	printStatus(iconSuccess, StyleSuccess, fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	printStatus(iconError, styleIconError, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	printStatus(iconWarning, StyleWarning, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printStatus(iconInfo, lipgloss.NewStyle().Foreground(colorSlate), fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line under a status message.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output path.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + StyleValue.Render(value))
}

// printNextStep suggests a follow-up shell command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Export Stats
// =============================================================================

// printExportStats prints "PNG · 12.3 KB · fresh" under the output path.
func printExportStats(format sink.Format, size int, cached bool) {
	status := StyleDim.Render("fresh")
	if cached {
		status = StyleSuccess.Render("cached")
	}
	sep := StyleDim.Render(" · ")
	fmt.Println("  " + strings.Join([]string{
		StyleDim.Render(strings.ToUpper(string(format))),
		StyleDim.Render(formatBytes(size)),
		status,
	}, sep))
}

// formatBytes renders n as B, KB or MB.
func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}
