package director

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/dead-arena/asset"
	"github.com/lixenwraith/dead-arena/core"
	"github.com/lixenwraith/dead-arena/engine"
	"github.com/lixenwraith/dead-arena/entity"
	"github.com/lixenwraith/dead-arena/events"
	"github.com/lixenwraith/dead-arena/input"
	"github.com/lixenwraith/dead-arena/parameter"
	"github.com/lixenwraith/dead-arena/render"
	"github.com/lixenwraith/dead-arena/status"
	"github.com/lixenwraith/dead-arena/vmath"
)

// State is the top-level game state
type State uint8

const (
	StateLoading State = iota
	StateTitle
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

var (
	ErrNoSurface = errors.New("director: render target unavailable")
	ErrNoEngine  = errors.New("director: engine is nil")
	ErrNoInput   = errors.New("director: input source is nil")
	ErrNoAssets  = errors.New("director: asset provider is nil")
)

// Options tunes a Director
type Options struct {
	// Seed for spawn randomness, 0 seeds from the clock
	Seed         uint64
	EffectVolume float64
	MusicVolume  float64
	DebugOverlay bool
}

// Director owns the game state machine and everything above the entity level:
// waves, spawn cadence, obstacle layout, score, HUD and screens
// It runs as an engine frame hook, so all of its state lives on the driver goroutine
type Director struct {
	engine  *engine.Engine
	surface render.Surface
	input   input.Source
	assets  asset.Provider
	queue   *events.Queue
	router  *events.Router[*Director]
	rng     *vmath.FastRand
	reg     *status.Registry
	arena   vmath.Rect
	opts    Options

	state     State
	runID     uuid.UUID
	score     int
	kills     int
	highScore int

	wave             int
	zombiesRemaining int
	spawnCooldown    float64
	waveTimer        float64
	pickupTimer      float64

	player    *entity.Entity
	obstacles []*entity.Entity

	// Keyboard-only play aims along movement until the pointer first moves
	pointerStart vmath.Vec2
	pointerMoved bool

	clock       float64 // Seconds since start of run, driven by dt
	lastHurtSFX float64
	overlay     bool
	redraw      bool

	// Cached metric pointers
	statWave  *atomic.Int64
	statScore *atomic.Int64
	statKills *atomic.Int64
	statState *status.Text
}

// New creates a Director and registers it as a frame hook on eng
// The engine is paused until a game starts
func New(eng *engine.Engine, surface render.Surface, src input.Source, assets asset.Provider, reg *status.Registry, opts Options) (*Director, error) {
	switch {
	case surface == nil:
		return nil, ErrNoSurface
	case eng == nil:
		return nil, ErrNoEngine
	case src == nil:
		return nil, ErrNoInput
	case assets == nil:
		return nil, ErrNoAssets
	}
	w, h := surface.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: size %vx%v", ErrNoSurface, w, h)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	q := events.NewQueue()
	d := &Director{
		engine:  eng,
		surface: surface,
		input:   src,
		assets:  assets,
		queue:   q,
		router:  events.NewRouter[*Director](q),
		rng:     vmath.NewFastRand(seed),
		reg:     reg,
		arena:   vmath.Rect{W: w, H: h},
		opts:    opts,
		overlay: opts.DebugOverlay,

		lastHurtSFX: -1,

		statWave:  reg.Ints.Get("game.wave"),
		statScore: reg.Ints.Get("game.score"),
		statKills: reg.Ints.Get("game.kills"),
		statState: reg.Texts.Get("game.state"),
	}
	d.router.Register(scoreKeeper{})
	d.router.Register(soundBoard{})
	d.router.Register(runLogger{})

	eng.Pause()
	eng.AddHook(d)
	d.setState(StateLoading)
	return d, nil
}

func (d *Director) State() State { return d.state }
func (d *Director) Score() int { return d.score }
func (d *Director) HighScore() int { return d.highScore }
func (d *Director) Kills() int { return d.kills }
func (d *Director) Wave() int { return d.wave }
func (d *Director) ZombiesRemaining() int { return d.zombiesRemaining }
func (d *Director) Player() *entity.Entity { return d.player }
func (d *Director) RunID() uuid.UUID { return d.runID }
func (d *Director) Arena() vmath.Rect { return d.arena }

func (d *Director) setState(s State) {
	if d.state != s {
		log.Debug().Str("from", d.state.String()).Str("state", s.String()).Msg("state change")
	}
	d.state = s
	d.statState.Set(s.String())
}

// BeginFrame polls input and advances game logic ahead of the engine frame
func (d *Director) BeginFrame(dt float64) {
	if d.input.ConsumeAction(input.ActionDebugToggle) {
		d.overlay = !d.overlay
		// A paused engine does not clear, so the old overlay would stay on screen
		d.redraw = d.engine.IsPaused()
	}

	switch d.state {
	case StateLoading:
		if d.assets.Progress() >= 1 {
			d.setState(StateTitle)
		}

	case StateTitle:
		d.input.ConsumeAction(input.ActionPause)
		if d.input.ConsumePrimaryAction() {
			d.StartGame()
		}

	case StatePlaying:
		if d.input.ConsumeAction(input.ActionPause) {
			d.pause()
			return
		}
		// Clicks during play only fire; drop them so they never leak into a menu
		d.input.ConsumePrimaryAction()
		d.clock += dt
		d.control()
		d.updateWaves(dt)
		d.updatePickups(dt)

	case StatePaused:
		if d.input.ConsumeAction(input.ActionPause) {
			d.resume()
		} else if d.input.ConsumePrimaryAction() {
			d.StartGame()
		}

	case StateGameOver:
		d.input.ConsumeAction(input.ActionPause)
		if d.input.ConsumePrimaryAction() {
			d.StartGame()
		}
	}
}

// EndFrame dispatches this frame's events, detects death and draws overlays
func (d *Director) EndFrame(dt float64) {
	d.router.DispatchAll(d)

	if d.state == StatePlaying && d.player != nil && d.player.MarkedForDeletion {
		d.gameOver()
		d.router.DispatchAll(d)
	}

	// Paused and game over frames keep the last rendered scene
	if d.redraw {
		d.redraw = false
		d.engine.Render()
	}

	switch d.state {
	case StateLoading:
		d.drawLoading()
	case StateTitle:
		d.drawTitle()
	case StatePlaying:
		d.drawHUD()
	case StatePaused:
		d.drawHUD()
		d.drawPaused()
	case StateGameOver:
		d.drawHUD()
		d.drawGameOver()
	}
	if d.overlay {
		d.drawOverlay()
	}
}

// EntityPruned converts killed enemies into score events
func (d *Director) EntityPruned(e *entity.Entity) {
	if e.Kind != entity.KindEnemy || !e.Killed() {
		return
	}
	d.queue.Push(events.GameEvent{
		Type:     events.EventEnemyKilled,
		EntityID: e.ID,
		Label:    e.Enemy.Kind.String(),
		Amount:   float64(e.Enemy.Kind.Score()),
		Pos:      e.Center(),
	})
}

// StartGame resets the run and begins wave 1
func (d *Director) StartGame() {
	d.engine.Clear()
	d.queue.Drain()

	d.runID = uuid.New()
	d.score = 0
	d.kills = 0
	d.clock = 0
	d.lastHurtSFX = -1
	d.pickupTimer = 0
	d.statScore.Store(0)
	d.statKills.Store(0)

	if r, ok := d.input.(input.Resetter); ok {
		r.Reset()
	}
	d.player = entity.NewPlayer(d.arena.Center(), d.arena, d.queue)
	d.pointerStart = d.input.PointerPosition()
	d.pointerMoved = false

	d.obstacles = d.obstacles[:0]
	for _, r := range GenerateObstacles(d.arena, d.rng) {
		ob := entity.NewObstacle(r)
		d.obstacles = append(d.obstacles, ob)
		d.engine.AddEntity(ob)
	}
	d.engine.AddEntity(d.player)

	d.startWave(1)
	d.setState(StatePlaying)
	d.engine.Resume()
	d.assets.Play(core.SoundMusic, d.opts.MusicVolume, true)

	log.Info().
		Str("run", d.runID.String()).
		Int("obstacles", len(d.obstacles)).
		Msg("game started")
}

func (d *Director) pause() {
	d.setState(StatePaused)
	d.engine.Pause()
	d.assets.Stop(core.SoundMusic)
}

func (d *Director) resume() {
	d.setState(StatePlaying)
	d.engine.Resume()
	d.assets.Play(core.SoundMusic, d.opts.MusicVolume, true)
}

func (d *Director) gameOver() {
	d.setState(StateGameOver)
	d.engine.Pause()
	if d.score > d.highScore {
		d.highScore = d.score
	}
	d.assets.Stop(core.SoundMusic)
	d.queue.Push(events.GameEvent{Type: events.EventGameOver, Amount: float64(d.score)})
}

// control applies movement, aim, weapon selection and fire from input
func (d *Director) control() {
	p := d.player
	if p == nil {
		return
	}
	move := input.MoveVector(d.input)
	p.Player.Move = move

	pointer := d.input.PointerPosition()
	if !d.pointerMoved && pointer != d.pointerStart {
		d.pointerMoved = true
	}
	if d.pointerMoved {
		p.Aim(pointer)
	} else if !move.IsZero() {
		p.Player.Direction = move
	}

	switch {
	case d.input.ConsumeAction(input.ActionWeapon1):
		p.SwitchWeapon(entity.WeaponPistol)
	case d.input.ConsumeAction(input.ActionWeapon2):
		p.SwitchWeapon(entity.WeaponShotgun)
	case d.input.ConsumeAction(input.ActionWeapon3):
		p.SwitchWeapon(entity.WeaponRifle)
	}

	if d.input.IsActionDown(input.ActionFire) {
		if shots := p.Shoot(d.rng); shots != nil {
			for _, s := range shots {
				d.engine.AddEntity(s)
			}
			d.queue.Push(events.GameEvent{
				Type:     events.EventShotFired,
				EntityID: p.ID,
				Label:    p.Player.Weapon.String(),
				Amount:   float64(len(shots)),
				Pos:      p.Center(),
			})
		}
	}
}

func (d *Director) startWave(n int) {
	d.wave = n
	d.zombiesRemaining = WaveSize(n)
	d.spawnCooldown = 0
	d.waveTimer = 0
	d.statWave.Store(int64(n))
	d.queue.Push(events.GameEvent{Type: events.EventWaveStarted, Amount: float64(n)})
}

// updateWaves spawns at most one enemy per frame, then waits out the wave break
func (d *Director) updateWaves(dt float64) {
	if d.zombiesRemaining > 0 {
		d.spawnCooldown -= dt
		if d.spawnCooldown <= 0 {
			d.spawnEnemy()
			d.zombiesRemaining--
			d.spawnCooldown = SpawnInterval(d.wave)
		}
		return
	}
	d.waveTimer += dt
	if d.waveTimer >= parameter.WaveBreak {
		d.startWave(d.wave + 1)
	}
}

func (d *Director) spawnEnemy() {
	kind := RollEnemyKind(d.wave, d.rng.Float64())
	pos := SpawnPosition(d.arena, kind.Size(), d.rng)
	d.engine.AddEntity(entity.NewEnemy(kind, pos, d.player, d.queue))
}

func (d *Director) updatePickups(dt float64) {
	d.pickupTimer += dt
	if d.pickupTimer < parameter.PickupSpawnInterval {
		return
	}
	d.pickupTimer -= parameter.PickupSpawnInterval
	d.spawnPickup()
}

func (d *Director) spawnPickup() {
	kind := entity.PickupKind(d.rng.Intn(int(entity.PickupKindCount)))
	boxes := make([]vmath.Rect, 0, len(d.obstacles))
	for _, ob := range d.obstacles {
		boxes = append(boxes, ob.Bounds())
	}
	pos, ok := PlacePickup(d.arena, boxes, d.rng)
	if !ok {
		log.Debug().Str("kind", kind.String()).Msg("pickup placement failed, skipping cycle")
		return
	}
	d.engine.AddEntity(entity.NewPickup(kind, kind.DefaultValue(), pos, d.queue))
}

// aliveEnemies counts enemies currently in the engine
func (d *Director) aliveEnemies() int {
	n := 0
	for _, e := range d.engine.Entities() {
		if e.Kind == entity.KindEnemy {
			n++
		}
	}
	return n
}
