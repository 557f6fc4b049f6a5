// Package ui provides the lipgloss styles and table rendering for the q47
// report output.
package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors shared by all reports.
var (
	ColorPass   = lipgloss.Color("#8BC34A")
	ColorFail   = lipgloss.Color("#e53935")
	ColorAccent = lipgloss.Color("#2196F3")
	ColorMuted  = lipgloss.Color("#808080")
)

// Styles bundles the styles the report tables render with.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Body   lipgloss.Style
	Muted  lipgloss.Style
	Pass   lipgloss.Style
	Fail   lipgloss.Style
}

// DefaultStyles returns the standard report styling.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
		Header: lipgloss.NewStyle().Bold(true),
		Body:   lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle().Foreground(ColorMuted),
		Pass:   lipgloss.NewStyle().Bold(true).Foreground(ColorPass),
		Fail:   lipgloss.NewStyle().Bold(true).Foreground(ColorFail),
	}
}
