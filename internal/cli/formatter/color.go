package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// JXING brand palette, adapted for terminal rendering.
var (
	ColorAzure  = lipgloss.Color("#4a9eed")
	ColorRobin  = lipgloss.Color("#35c4bf")
	ColorMarian = lipgloss.Color("#5b6ee1")
	ColorGold   = lipgloss.Color("#e8b339")
	ColorRed    = lipgloss.Color("#e05252")
	ColorDim    = lipgloss.Color("#8a93a6")
	ColorFg     = lipgloss.Color("#e8ecf4")
	ColorHeader = lipgloss.Color("#4a9eed")
)

// Predefined lipgloss styles.
var (
	StyleAzure  = lipgloss.NewStyle().Foreground(ColorAzure)
	StyleRobin  = lipgloss.NewStyle().Foreground(ColorRobin)
	StyleMarian = lipgloss.NewStyle().Foreground(ColorMarian)
	StyleGold   = lipgloss.NewStyle().Foreground(ColorGold)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
