package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/dead-arena/core"
	"github.com/lixenwraith/dead-arena/entity"
	"github.com/lixenwraith/dead-arena/parameter"
	"github.com/lixenwraith/dead-arena/render"
	"github.com/lixenwraith/dead-arena/status"
)

// FrameHook runs around every engine frame on the driver goroutine
// BeginFrame sees dt = 0 while paused; EndFrame draws over the rendered entities
type FrameHook interface {
	BeginFrame(dt float64)
	EndFrame(dt float64)
}

// PruneObserver is an optional FrameHook extension notified of every pruned entity
type PruneObserver interface {
	EntityPruned(e *entity.Entity)
}

// Engine owns the live entity list and runs the fixed frame:
// collide, update, prune, render
// Frame state is touched only by the driver goroutine; pause and running flags are atomic
type Engine struct {
	surface render.Surface
	images  entity.ImageSource

	entities []*entity.Entity
	pending  []*entity.Entity // Added during a frame, merged after prune
	inFrame  bool

	hooks []FrameHook
	clock *FrameClock
	time  TimeProvider

	tickInterval time.Duration
	paused       atomic.Bool
	running      atomic.Bool
	ctlMu        sync.Mutex
	stopChan     chan struct{}
	wg           sync.WaitGroup

	// Cached metric pointers
	statFrames   *atomic.Int64
	statEntities *atomic.Int64
	statPruned   *atomic.Int64
	fps          *status.RateMeter
}

// New creates an engine drawing to surface and ticking every tickInterval
// reg may be nil when metrics are not wanted
func New(surface render.Surface, tickInterval time.Duration, tp TimeProvider, reg *status.Registry) *Engine {
	if tp == nil {
		tp = MonotonicTimeProvider{}
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Engine{
		surface:      surface,
		clock:        NewFrameClock(parameter.MaxFrameDelta),
		time:         tp,
		tickInterval: tickInterval,
		statFrames:   reg.Ints.Get("engine.frames"),
		statEntities: reg.Ints.Get("engine.entities"),
		statPruned:   reg.Ints.Get("engine.pruned"),
		fps:          status.NewRateMeter(reg.Floats.Get("engine.fps"), 0.1),
	}
}

// SetImages installs the sprite source used when rendering entities
func (e *Engine) SetImages(images entity.ImageSource) {
	e.images = images
}

// AddHook registers a frame hook, must be called before Start
func (e *Engine) AddHook(h FrameHook) {
	e.hooks = append(e.hooks, h)
}

// AddEntity registers an entity; during a frame it joins after prune
func (e *Engine) AddEntity(en *entity.Entity) {
	if en == nil {
		return
	}
	if e.inFrame {
		e.pending = append(e.pending, en)
		return
	}
	e.entities = append(e.entities, en)
}

// RemoveEntity marks en during a frame and removes it immediately otherwise
// Removing an absent entity is a no-op
func (e *Engine) RemoveEntity(en *entity.Entity) {
	if en == nil {
		return
	}
	if e.inFrame {
		en.MarkForDeletion()
		return
	}
	e.entities = removeEntity(e.entities, en)
	e.pending = removeEntity(e.pending, en)
}

func removeEntity(list []*entity.Entity, en *entity.Entity) []*entity.Entity {
	for i, x := range list {
		if x == en {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1]
		}
	}
	return list
}

// Clear drops every entity without notifying observers
func (e *Engine) Clear() {
	clear(e.entities)
	e.entities = e.entities[:0]
	clear(e.pending)
	e.pending = e.pending[:0]
}

// Entities returns a snapshot of the live list in insertion order
func (e *Engine) Entities() []*entity.Entity {
	out := make([]*entity.Entity, len(e.entities))
	copy(out, e.entities)
	return out
}

// Count returns the number of live entities
func (e *Engine) Count() int {
	return len(e.entities)
}

func (e *Engine) IsPaused() bool {
	return e.paused.Load()
}

func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// Pause suspends frames; hooks keep running with dt = 0
func (e *Engine) Pause() {
	e.paused.Store(true)
}

// Resume restarts frames and resets the delta baseline so paused time is never applied
func (e *Engine) Resume() {
	if e.paused.CompareAndSwap(true, false) {
		e.clock.Reset(e.time.Now())
	}
}

// Start launches the frame driver, no-op when already running
func (e *Engine) Start() {
	e.ctlMu.Lock()
	defer e.ctlMu.Unlock()
	if !e.running.CompareAndSwap(false, true) {
		return
	}
	e.clock.Reset(e.time.Now())
	e.stopChan = make(chan struct{})
	stop := e.stopChan
	e.wg.Add(1)
	core.Go(func() { e.driverLoop(stop) })
}

// Stop halts the frame driver and waits for it to exit, no-op when not running
// Must not be called from a frame hook
func (e *Engine) Stop() {
	e.ctlMu.Lock()
	defer e.ctlMu.Unlock()
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	close(e.stopChan)
	e.wg.Wait()
}

func (e *Engine) driverLoop(stop <-chan struct{}) {
	defer e.wg.Done()

	ticker := time.NewTicker(e.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			e.Advance(e.time.Now())
		}
	}
}

// Advance runs one driver step at wall time now: hooks begin,
// engine frame unless paused, hooks end
func (e *Engine) Advance(now time.Time) {
	dt := 0.0
	if !e.paused.Load() {
		dt = e.clock.Delta(now)
	}

	for _, h := range e.hooks {
		h.BeginFrame(dt)
	}
	// A hook may have paused the engine
	if !e.paused.Load() {
		e.Frame(dt)
	}
	for _, h := range e.hooks {
		h.EndFrame(dt)
	}
}

// Frame executes one simulation frame of dt seconds
func (e *Engine) Frame(dt float64) {
	e.inFrame = true
	live := e.entities

	// Collision: each unordered pair once, handler invoked for both orderings
	for i := 0; i < len(live); i++ {
		a := live[i]
		for j := i + 1; j < len(live); j++ {
			b := live[j]
			if a.Bounds().Overlaps(b.Bounds()) {
				entity.Collide(a, b)
				entity.Collide(b, a)
			}
		}
	}

	for _, en := range live {
		en.Update(dt)
	}

	e.prune()
	e.inFrame = false

	if len(e.pending) > 0 {
		e.entities = append(e.entities, e.pending...)
		clear(e.pending)
		e.pending = e.pending[:0]
	}

	e.Render()

	e.statFrames.Add(1)
	e.statEntities.Store(int64(len(e.entities)))
	e.fps.Sample(dt)
}

// Render clears the surface and draws every live entity in insertion order
// Also used by hooks to redraw the frozen scene while paused
func (e *Engine) Render() {
	if e.surface == nil {
		return
	}
	e.surface.Clear(render.RGBArena)
	for _, en := range e.entities {
		en.Render(e.surface, e.images)
	}
}

// prune compacts the live list in place, reporting each removed entity
func (e *Engine) prune() {
	kept := e.entities[:0]
	var removed []*entity.Entity
	for _, en := range e.entities {
		if en.MarkedForDeletion {
			removed = append(removed, en)
			continue
		}
		kept = append(kept, en)
	}
	clear(e.entities[len(kept):])
	e.entities = kept

	if len(removed) == 0 {
		return
	}
	e.statPruned.Add(int64(len(removed)))
	for _, en := range removed {
		for _, h := range e.hooks {
			if obs, ok := h.(PruneObserver); ok {
				obs.EntityPruned(en)
			}
		}
	}
}
