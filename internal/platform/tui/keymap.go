package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/darkpath/internal/config"
)

// Command is a host-level command derived from a key press. Movement
// commands feed the hold tracker; the rest act once.
type Command int

const (
	CommandNone Command = iota
	CommandLeft
	CommandRight
	CommandInteract
	CommandStop
	CommandPause
	CommandScreenshot
	CommandFullscreen
	CommandOverview
	CommandQuit
)

// KeyMap defines the key bindings for playing.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Interact   key.Binding
	Stop       key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Fullscreen key.Binding
	Overview   key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Interact, k.Pause, k.Overview, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Stop, k.Interact},
		{k.Pause, k.Overview, k.Screenshot, k.Fullscreen, k.Quit},
	}
}

// NewKeyMap builds key bindings from configuration.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Left:       binding(cfg.Left, "move left"),
		Right:      binding(cfg.Right, "move right"),
		Interact:   binding(cfg.Interact, "use"),
		Stop:       binding(cfg.Stop, "stop"),
		Pause:      binding(cfg.Pause, "pause"),
		Screenshot: binding(cfg.Screenshot, "screenshot"),
		Fullscreen: binding(cfg.Fullscreen, "fullscreen"),
		Overview:   binding(cfg.Overview, "levels"),
		Quit:       binding(cfg.Quit, "quit"),
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultConfig().Keys)
}

// binding builds a key binding whose help shows the first two keys.
func binding(keys []string, desc string) key.Binding {
	shown := make([]string, 0, 2)
	for _, k := range keys {
		if len(shown) == 2 {
			break
		}
		shown = append(shown, keyLabel(k))
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(shown, "/"), desc),
	)
}

func keyLabel(k string) string {
	switch k {
	case " ":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return k
}

// KeyMapper translates Bubble Tea key messages to host commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to a command.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Command {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return CommandQuit
	case key.Matches(msg, k.Left):
		return CommandLeft
	case key.Matches(msg, k.Right):
		return CommandRight
	case key.Matches(msg, k.Interact):
		return CommandInteract
	case key.Matches(msg, k.Stop):
		return CommandStop
	case key.Matches(msg, k.Pause):
		return CommandPause
	case key.Matches(msg, k.Screenshot):
		return CommandScreenshot
	case key.Matches(msg, k.Fullscreen):
		return CommandFullscreen
	case key.Matches(msg, k.Overview):
		return CommandOverview
	}
	return CommandNone
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}
