package tui

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMapStations(t *testing.T) {
	tests := []struct {
		n       int
		keys    []string
		enabled bool
	}{
		{4, []string{"1", "2", "3", "4"}, true},
		{1, []string{"1"}, true},
		{12, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, true},
		{0, []string{}, false},
	}

	for _, tc := range tests {
		k := DefaultKeyMap(tc.n)
		if got := k.Station.Keys(); !slices.Equal(got, tc.keys) {
			t.Errorf("DefaultKeyMap(%d).Station.Keys() = %v, expected %v", tc.n, got, tc.keys)
		}
		if got := k.Station.Enabled(); got != tc.enabled {
			t.Errorf("DefaultKeyMap(%d).Station.Enabled() = %v, expected %v", tc.n, got, tc.enabled)
		}
	}

	if got := DefaultKeyMap(4).Station.Help().Key; got != "1-4" {
		t.Errorf("Station.Help().Key = %q, expected 1-4", got)
	}
}

func TestStationIndex(t *testing.T) {
	tests := []struct {
		msg   tea.KeyMsg
		index int
		ok    bool
	}{
		{runeKey('1'), 0, true},
		{runeKey('4'), 3, true},
		{runeKey('9'), 8, true},
		{runeKey('0'), 0, false},
		{runeKey('q'), 0, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, 0, false},
	}

	for _, tc := range tests {
		index, ok := stationIndex(tc.msg)
		if index != tc.index || ok != tc.ok {
			t.Errorf("stationIndex(%q) = (%d, %v), expected (%d, %v)", tc.msg.String(), index, ok, tc.index, tc.ok)
		}
	}
}
