package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps physical keys to actions
type KeyTable struct {
	// Special keys (arrows, Ctrl+*, Enter, Escape)
	SpecialKeys map[tcell.Key]Action
	// Printable runes, matched case-insensitively
	Runes map[rune]Action
}

// DefaultKeyTable returns WASD + arrows movement, space/enter fire, p/Esc pause
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionMoveUp,
			tcell.KeyDown:   ActionMoveDown,
			tcell.KeyLeft:   ActionMoveLeft,
			tcell.KeyRight:  ActionMoveRight,
			tcell.KeyEnter:  ActionFire,
			tcell.KeyEscape: ActionPause,
			tcell.KeyF3:     ActionDebugToggle,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
		},
		Runes: map[rune]Action{
			'w': ActionMoveUp,
			's': ActionMoveDown,
			'a': ActionMoveLeft,
			'd': ActionMoveRight,
			' ': ActionFire,
			'p': ActionPause,
			'1': ActionWeapon1,
			'2': ActionWeapon2,
			'3': ActionWeapon3,
			'`': ActionDebugToggle,
		},
	}
}

// Lookup resolves a key event to an action, ActionNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[toLower(ev.Rune())]
	}
	return kt.SpecialKeys[ev.Key()]
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Rune aliases for keys that cannot be written as a single character
var runeAliases = map[string]rune{
	"space": ' ',
}

// Apply overlays bindings of the form action name -> key name
// Key names are tcell key names ("Up", "Enter", "Ctrl-Q"), rune aliases, or single characters
// The default binding of an overridden key is replaced
func (kt *KeyTable) Apply(bindings map[string]string) error {
	special := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		special[strings.ToLower(name)] = k
	}

	for actionName, keyName := range bindings {
		action, ok := ParseAction(actionName)
		if !ok {
			return fmt.Errorf("keymap: unknown action %q", actionName)
		}
		lower := strings.ToLower(keyName)
		if r, ok := runeAliases[lower]; ok {
			kt.Runes[r] = action
			continue
		}
		if utf8.RuneCountInString(keyName) == 1 {
			r, _ := utf8.DecodeRuneInString(keyName)
			kt.Runes[toLower(r)] = action
			continue
		}
		if k, ok := special[lower]; ok {
			kt.SpecialKeys[k] = action
			continue
		}
		return fmt.Errorf("keymap: unknown key %q for action %s", keyName, actionName)
	}
	return nil
}
