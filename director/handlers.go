package director

import (
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/dead-arena/core"
	"github.com/lixenwraith/dead-arena/events"
)

// hurtSoundGap throttles player_hurt, contact damage lands every frame
const hurtSoundGap = 0.25

// scoreKeeper awards points for kills
type scoreKeeper struct{}

func (scoreKeeper) EventTypes() []events.EventType {
	return []events.EventType{events.EventEnemyKilled}
}

func (scoreKeeper) HandleEvent(d *Director, ev events.GameEvent) {
	d.score += int(ev.Amount)
	d.kills++
	d.statScore.Store(int64(d.score))
	d.statKills.Store(int64(d.kills))
}

// soundBoard maps gameplay events to sound effects
type soundBoard struct{}

func (soundBoard) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventShotFired,
		events.EventEnemyHit,
		events.EventEnemyKilled,
		events.EventPlayerHurt,
		events.EventPickupCollected,
		events.EventWaveStarted,
		events.EventGameOver,
	}
}

func (soundBoard) HandleEvent(d *Director, ev events.GameEvent) {
	var key string
	switch ev.Type {
	case events.EventShotFired:
		key = shotSound(ev.Label)
	case events.EventEnemyHit:
		key = core.SoundEnemyHit
	case events.EventEnemyKilled:
		key = core.SoundEnemyDie
	case events.EventPlayerHurt:
		if d.lastHurtSFX >= 0 && d.clock-d.lastHurtSFX < hurtSoundGap {
			return
		}
		d.lastHurtSFX = d.clock
		key = core.SoundPlayerHurt
	case events.EventPickupCollected:
		key = core.SoundPickup
	case events.EventWaveStarted:
		key = core.SoundWaveStart
	case events.EventGameOver:
		key = core.SoundGameOver
	}
	if key != "" {
		d.assets.Play(key, d.opts.EffectVolume, false)
	}
}

func shotSound(weapon string) string {
	switch weapon {
	case "shotgun":
		return core.SoundShootShotgun
	case "rifle":
		return core.SoundShootRifle
	default:
		return core.SoundShootPistol
	}
}

// runLogger records run milestones
type runLogger struct{}

func (runLogger) EventTypes() []events.EventType {
	return []events.EventType{events.EventWaveStarted, events.EventPlayerDied, events.EventGameOver}
}

func (runLogger) HandleEvent(d *Director, ev events.GameEvent) {
	switch ev.Type {
	case events.EventWaveStarted:
		log.Info().
			Str("run", d.runID.String()).
			Int("wave", int(ev.Amount)).
			Int("enemies", WaveSize(int(ev.Amount))).
			Msg("wave started")
	case events.EventPlayerDied:
		log.Info().
			Str("run", d.runID.String()).
			Int("wave", d.wave).
			Msg("player died")
	case events.EventGameOver:
		log.Info().
			Str("run", d.runID.String()).
			Int("score", int(ev.Amount)).
			Int("kills", d.kills).
			Int("wave", d.wave).
			Int("high_score", d.highScore).
			Msg("game over")
	}
}
