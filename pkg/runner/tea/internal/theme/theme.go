package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer  FooterTheme
	Panel   PanelTheme
	Preview PreviewTheme
	Modal   ModalTheme
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Dirty  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// PreviewTheme styles the sequence-text preview pane.
type PreviewTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Text  lipgloss.Style
}

// ModalTheme styles centered modal overlays (rename and create prompts).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Dirty:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Preview: PreviewTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Text:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}
