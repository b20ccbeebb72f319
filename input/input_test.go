package input

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dead-arena/vmath"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

type scaleMapper struct{}

func (scaleMapper) CellToWorld(cx, cy int) vmath.Vec2 {
	return vmath.V2(float64(cx)*10, float64(cy)*20)
}

func newTestSource() (*TerminalSource, *fakeClock) {
	clk := &fakeClock{t: time.Unix(100, 0)}
	s := NewTerminalSource(nil, scaleMapper{}, 200*time.Millisecond)
	s.now = clk.now
	return s, clk
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHoldWindow(t *testing.T) {
	s, clk := newTestSource()
	s.HandleEvent(key('w'))

	if !s.IsActionDown(ActionMoveUp) {
		t.Fatal("action should be held right after the press")
	}
	clk.t = clk.t.Add(150 * time.Millisecond)
	if !s.IsActionDown(ActionMoveUp) {
		t.Error("action should be held inside the window")
	}
	clk.t = clk.t.Add(100 * time.Millisecond)
	if s.IsActionDown(ActionMoveUp) {
		t.Error("action should release after the window")
	}
	if s.IsActionDown(ActionMoveDown) {
		t.Error("unpressed action must not be held")
	}
}

func TestUppercaseAndArrows(t *testing.T) {
	s, _ := newTestSource()
	s.HandleEvent(key('D'))
	s.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if !s.IsActionDown(ActionMoveRight) || !s.IsActionDown(ActionMoveUp) {
		t.Error("uppercase runes and arrows should map to movement")
	}
	v := MoveVector(s)
	if math.Abs(v.Length()-1) > 1e-9 || v.X <= 0 || v.Y >= 0 {
		t.Errorf("expected normalized up-right vector, got %v", v)
	}
}

func TestConsumeIsEdgeTriggered(t *testing.T) {
	s, _ := newTestSource()
	s.HandleEvent(key('p'))
	if !s.ConsumeAction(ActionPause) {
		t.Fatal("pause press should be pending")
	}
	if s.ConsumeAction(ActionPause) {
		t.Error("pending press must be cleared by consume")
	}
	if s.ConsumeAction(Action(200)) {
		t.Error("out of range action must be false")
	}
}

func TestQuitKeys(t *testing.T) {
	s, _ := newTestSource()
	if s.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("Ctrl-C should request quit")
	}
	if !s.HandleEvent(key('z')) {
		t.Error("unbound key must not quit")
	}
}

func TestMousePrimaryAndPointer(t *testing.T) {
	s, _ := newTestSource()
	s.HandleEvent(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone))
	if p := s.PointerPosition(); p != vmath.V2(30, 80) {
		t.Errorf("pointer should be mapped to world, got %v", p)
	}
	if s.ConsumePrimaryAction() {
		t.Error("motion alone is not a primary action")
	}

	s.HandleEvent(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone))
	s.HandleEvent(tcell.NewEventMouse(6, 5, tcell.Button1, tcell.ModNone))
	if !s.IsActionDown(ActionFire) {
		t.Error("held button should hold fire")
	}
	if !s.ConsumePrimaryAction() {
		t.Error("button press should be a primary action")
	}
	if s.ConsumePrimaryAction() {
		t.Error("drag must not produce another primary action")
	}

	s.HandleEvent(tcell.NewEventMouse(6, 5, tcell.ButtonNone, tcell.ModNone))
	if s.IsActionDown(ActionFire) {
		t.Error("released button should release fire")
	}
}

func TestFireKeyIsPrimary(t *testing.T) {
	s, _ := newTestSource()
	s.HandleEvent(key(' '))
	if !s.ConsumePrimaryAction() {
		t.Error("space should trigger the primary action")
	}
}

func TestAutoRepeatIsOneActivation(t *testing.T) {
	tests := []struct {
		name    string
		r       rune
		consume func(s *TerminalSource) bool
	}{
		{"fire", ' ', func(s *TerminalSource) bool { return s.ConsumePrimaryAction() }},
		{"pause", 'p', func(s *TerminalSource) bool { return s.ConsumeAction(ActionPause) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, clk := newTestSource()
			s.HandleEvent(key(tt.r))
			if !tt.consume(s) {
				t.Fatal("first press should activate")
			}

			// Repeats arrive well inside the hold window while the key stays down
			for i := 0; i < 5; i++ {
				clk.t = clk.t.Add(30 * time.Millisecond)
				s.HandleEvent(key(tt.r))
				if tt.consume(s) {
					t.Fatalf("repeat %d produced another activation", i+1)
				}
			}
			if tt.r == ' ' && !s.IsActionDown(ActionFire) {
				t.Error("repeats should keep fire held")
			}

			// Released past the window, the next press is fresh
			clk.t = clk.t.Add(250 * time.Millisecond)
			s.HandleEvent(key(tt.r))
			if !tt.consume(s) {
				t.Error("press after the hold window should activate again")
			}
		})
	}
}

func TestReset(t *testing.T) {
	s, _ := newTestSource()
	s.HandleEvent(key('a'))
	s.HandleEvent(key('1'))
	s.Reset()
	if s.IsActionDown(ActionMoveLeft) || s.ConsumeAction(ActionWeapon1) {
		t.Error("reset must drop held and pending input")
	}
}

func TestKeyTableApply(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
		check    func(kt *KeyTable) bool
		wantErr  bool
	}{
		{"rune", map[string]string{"fire": "F"}, func(kt *KeyTable) bool { return kt.Runes['f'] == ActionFire }, false},
		{"alias", map[string]string{"pause": "space"}, func(kt *KeyTable) bool { return kt.Runes[' '] == ActionPause }, false},
		{"special", map[string]string{"debug_toggle": "F5"}, func(kt *KeyTable) bool { return kt.SpecialKeys[tcell.KeyF5] == ActionDebugToggle }, false},
		{"unknown action", map[string]string{"jump": "j"}, nil, true},
		{"unknown key", map[string]string{"fire": "NotAKey"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kt := DefaultKeyTable()
			err := kt.Apply(tt.bindings)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Apply() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && !tt.check(kt) {
				t.Error("binding not applied")
			}
		})
	}
}

func TestParseAction(t *testing.T) {
	if a, ok := ParseAction("weapon_2"); !ok || a != ActionWeapon2 {
		t.Error("weapon_2 should parse")
	}
	if _, ok := ParseAction("teleport"); ok {
		t.Error("unknown action must not parse")
	}
}
