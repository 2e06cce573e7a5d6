// Package tuiapp provides the TUI app which lets the user pick a date and shows the launches of
// that day, the picture of the day, the launch sites and a short mission description.
// Layout idea:
// +-----------------------------------------------------------+
// | Year [    ] Month [  ] Day [  ]    Picture only [       ] |
// |  ___________________________       ____________________   |
// | | launch table              |     | launch site table  |  |
// | | entry 0                   |     | entry 0            |  |
// | | ...                       |     | ...                |  |
// |  ---------------------------       --------------------   |
// | status counts                      map link               |
// | picture of the day                 mission description    |
// |                                                           |
// | picture-only lookup                                       |
// +-----------------------------------------------------------+
// .
package tuiapp

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/micutio/launchday/internal"
)

type Theme struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Green     lipgloss.AdaptiveColor
	Red       lipgloss.AdaptiveColor
}

// DefaultTheme keeps the dark look of a night sky on dark terminals.
func DefaultTheme() Theme {
	return Theme{
		Primary:   lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
		Secondary: lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"},
		Highlight: lipgloss.AdaptiveColor{Light: "#4CAF50", Dark: "#45A049"},
		Border:    lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"},
		Green:     lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#00FF00"},
		Red:       lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"},
	}
}

// Run starts the TUI and blocks until the user quits.
func Run(appName string, fetcher Fetcher, defaultDate internal.DateKey) error {
	m := newModel(fetcher, DefaultTheme(), defaultDate)

	// Create a new Bubble Tea program with the model and enable alternate screen
	p := tea.NewProgram(&m, tea.WithAltScreen())

	// Run the program and handle any errors
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("%s: error running program: %w", appName, err)
	}

	return nil
}
