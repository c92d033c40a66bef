package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// maxStationKeys is the number of stations reachable by digit keys.
const maxStationKeys = 9

// KeyMap defines the key bindings for the kitchen.
type KeyMap struct {
	Station key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Station, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Station},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the bindings for a kitchen with n stations.
// Digits 1..n walk to the stations in configured order.
func DefaultKeyMap(n int) KeyMap {
	n = min(max(n, 0), maxStationKeys)

	digits := make([]string, n)
	for i := range n {
		digits[i] = strconv.Itoa(i + 1)
	}

	station := key.NewBinding(
		key.WithKeys(digits...),
		key.WithHelp(fmt.Sprintf("1-%d", n), "walk to station"),
	)
	if n == 0 {
		station.SetEnabled(false)
	}

	return KeyMap{
		Station: station,
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// stationIndex returns the 0-based station index for a digit key.
func stationIndex(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}
