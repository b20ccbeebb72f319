package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dead-arena/vmath"
)

// PointerMapper converts terminal cells to world coordinates
type PointerMapper interface {
	CellToWorld(cx, cy int) vmath.Vec2
}

// TerminalSource turns tcell events into the Source view
// Terminals report key presses and auto-repeat but never key release,
// so an action counts as held for the hold window after its last press
type TerminalSource struct {
	mu     sync.Mutex
	keys   *KeyTable
	mapper PointerMapper
	hold   time.Duration
	now    func() time.Time

	lastPress [actionCount]time.Time
	pending   [actionCount]bool

	pointer        vmath.Vec2
	buttonDown     bool
	primaryPending bool
}

// NewTerminalSource creates a source using keys and the given hold window
// mapper may be nil, in which case pointer positions are raw cell coordinates
func NewTerminalSource(keys *KeyTable, mapper PointerMapper, hold time.Duration) *TerminalSource {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &TerminalSource{
		keys:   keys,
		mapper: mapper,
		hold:   hold,
		now:    time.Now,
	}
}

// HandleEvent records a terminal event; returns false when the event requests quit
func (s *TerminalSource) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := s.keys.Lookup(ev)
		if action == ActionQuit {
			return false
		}
		if action == ActionNone {
			return true
		}
		s.mu.Lock()
		now := s.now()
		last := s.lastPress[action]
		s.lastPress[action] = now
		// Auto-repeat inside the hold window only extends the hold
		if last.IsZero() || now.Sub(last) > s.hold {
			s.pending[action] = true
			if action == ActionFire {
				s.primaryPending = true
			}
		}
		s.mu.Unlock()

	case *tcell.EventMouse:
		x, y := ev.Position()
		var p vmath.Vec2
		if s.mapper != nil {
			p = s.mapper.CellToWorld(x, y)
		} else {
			p = vmath.V2(float64(x), float64(y))
		}
		down := ev.Buttons()&tcell.Button1 != 0

		s.mu.Lock()
		s.pointer = p
		if down && !s.buttonDown {
			s.primaryPending = true
		}
		s.buttonDown = down
		s.mu.Unlock()
	}
	return true
}

func (s *TerminalSource) IsActionDown(a Action) bool {
	if a >= actionCount {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if a == ActionFire && s.buttonDown {
		return true
	}
	last := s.lastPress[a]
	return !last.IsZero() && s.now().Sub(last) <= s.hold
}

func (s *TerminalSource) PointerPosition() vmath.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pointer
}

func (s *TerminalSource) ConsumePrimaryAction() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.primaryPending
	s.primaryPending = false
	return v
}

func (s *TerminalSource) ConsumeAction(a Action) bool {
	if a >= actionCount {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.pending[a]
	s.pending[a] = false
	return v
}

// Reset drops all held and pending input; the director calls it on every new game
func (s *TerminalSource) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPress = [actionCount]time.Time{}
	s.pending = [actionCount]bool{}
	s.buttonDown = false
	s.primaryPending = false
}
