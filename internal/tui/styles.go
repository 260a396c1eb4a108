package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the pane and status styling.
type Theme struct {
	Name         string
	PaneTitle    lipgloss.Style
	FocusedPane  lipgloss.Style
	BlurredPane  lipgloss.Style
	StatusOK     lipgloss.Style
	StatusWarn   lipgloss.Style
	StatusError  lipgloss.Style
	BrowserDir   lipgloss.Style
	BrowserFile  lipgloss.Style
	Cursor       lipgloss.Style
	ControlLabel lipgloss.Style
}

// DefaultTheme returns the colored theme.
func DefaultTheme() Theme {
	return Theme{
		Name:         "default",
		PaneTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		FocusedPane:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("39")),
		BlurredPane:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		StatusOK:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		StatusWarn:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		BrowserDir:   lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		BrowserFile:  lipgloss.NewStyle(),
		Cursor:       lipgloss.NewStyle().Reverse(true),
		ControlLabel: lipgloss.NewStyle().Bold(true),
	}
}

// MonoTheme returns a colorless theme for NO_COLOR environments.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:         "mono",
		PaneTitle:    plain.Bold(true),
		FocusedPane:  plain.Border(lipgloss.RoundedBorder()),
		BlurredPane:  plain.Border(lipgloss.HiddenBorder()),
		StatusOK:     plain,
		StatusWarn:   plain,
		StatusError:  plain.Bold(true),
		BrowserDir:   plain.Bold(true),
		BrowserFile:  plain,
		Cursor:       plain.Reverse(true),
		ControlLabel: plain.Bold(true),
	}
}

// ThemeByName resolves a configured theme name, defaulting to the
// colored theme for unknown names.
func ThemeByName(name string) Theme {
	if name == "mono" {
		return MonoTheme()
	}
	return DefaultTheme()
}
