package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/darkpath/internal/config"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyDefaults(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected Command
	}{
		{"a", runeKey('a'), CommandLeft},
		{"h", runeKey('h'), CommandLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, CommandLeft},
		{"d", runeKey('d'), CommandRight},
		{"l", runeKey('l'), CommandRight},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, CommandRight},
		{"w", runeKey('w'), CommandInteract},
		{"k", runeKey('k'), CommandInteract},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, CommandInteract},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, CommandInteract},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, CommandInteract},
		{"s", runeKey('s'), CommandStop},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, CommandStop},
		{"p", runeKey('p'), CommandPause},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, CommandScreenshot},
		{"f", runeKey('f'), CommandFullscreen},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, CommandOverview},
		{"q", runeKey('q'), CommandQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, CommandQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, CommandQuit},
		{"unbound", runeKey('z'), CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestMapKeyCustomBindings(t *testing.T) {
	keys := config.DefaultConfig().Keys
	keys.Left = []string{"j"}
	km := NewKeyMapper(NewKeyMap(keys))

	if got := km.MapKey(runeKey('j')); got != CommandLeft {
		t.Errorf("MapKey(j) = %v, expected %v", got, CommandLeft)
	}
	if got := km.MapKey(runeKey('a')); got != CommandNone {
		t.Errorf("MapKey(a) = %v, expected %v", got, CommandNone)
	}
}

func TestHelpLabels(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"left", keys.Left.Help().Key, "←/a"},
		{"interact", keys.Interact.Help().Key, "↑/w"},
		{"quit", keys.Quit.Help().Key, "q/esc"},
		{"overview desc", keys.Overview.Help().Desc, "levels"},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s help = %q, expected %q", tt.name, tt.got, tt.expected)
		}
	}
}
