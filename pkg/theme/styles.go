package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles the printer derives from a palette.
type Styles struct {
	Title   lipgloss.Style
	Pending lipgloss.Style
	Done    lipgloss.Style
	Daily   lipgloss.Style
	Note    lipgloss.Style
	Danger  lipgloss.Style
	Swatch  func(hex string) lipgloss.Style
}

// Styles builds terminal styles for the palette.
func (t ColorTheme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true).
			Underline(true),
		Pending: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Done: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Border)).
			Strikethrough(true),
		Daily:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)),
		Note:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Border)).Italic(true),
		Danger: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		Swatch: func(hex string) lipgloss.Style {
			return lipgloss.NewStyle().
				Background(lipgloss.Color(hex)).
				Foreground(lipgloss.Color(t.InvertedText))
		},
	}
}
