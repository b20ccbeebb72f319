package input

import "github.com/lixenwraith/dead-arena/vmath"

// Action is a logical control independent of the physical key
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionFire
	ActionPause
	ActionWeapon1
	ActionWeapon2
	ActionWeapon3
	ActionDebugToggle
	ActionQuit
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:        "none",
	ActionMoveUp:      "move_up",
	ActionMoveDown:    "move_down",
	ActionMoveLeft:    "move_left",
	ActionMoveRight:   "move_right",
	ActionFire:        "fire",
	ActionPause:       "pause",
	ActionWeapon1:     "weapon_1",
	ActionWeapon2:     "weapon_2",
	ActionWeapon3:     "weapon_3",
	ActionDebugToggle: "debug_toggle",
	ActionQuit:        "quit",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction resolves a canonical action name
func ParseAction(name string) (Action, bool) {
	for a := Action(0); a < actionCount; a++ {
		if actionNames[a] == name {
			return a, true
		}
	}
	return ActionNone, false
}

// Source is the frame-side view of player input
// Implementations must be safe for concurrent use: events arrive on
// the poll goroutine while the frame goroutine reads
type Source interface {
	// IsActionDown reports whether the action is currently held
	IsActionDown(a Action) bool
	// PointerPosition returns the pointer in world coordinates
	PointerPosition() vmath.Vec2
	// ConsumePrimaryAction reports and clears a pending primary activation
	ConsumePrimaryAction() bool
	// ConsumeAction reports and clears a pending press of a
	ConsumeAction(a Action) bool
}

// Resetter is implemented by sources that buffer input between frames
// A new game resets them so presses from the previous run are dropped
type Resetter interface {
	Reset()
}

// MoveVector combines the four move actions into a normalized direction
func MoveVector(src Source) vmath.Vec2 {
	var v vmath.Vec2
	if src.IsActionDown(ActionMoveUp) {
		v.Y--
	}
	if src.IsActionDown(ActionMoveDown) {
		v.Y++
	}
	if src.IsActionDown(ActionMoveLeft) {
		v.X--
	}
	if src.IsActionDown(ActionMoveRight) {
		v.X++
	}
	return v.Normalize()
}
