package events

import "github.com/lixenwraith/dead-arena/vmath"

// EventType represents the type of game event
type EventType int

const (
	// EventShotFired signals a successful Player.Shoot
	// Trigger: Director fire input | Label: weapon name | Amount: projectile count
	EventShotFired EventType = iota

	// EventEnemyHit signals a player projectile damaging an enemy that survived
	// Trigger: collision table | Label: enemy kind | Amount: damage
	EventEnemyHit

	// EventEnemyKilled signals an enemy reaching zero health
	// Trigger: collision table | Consumer: scoring, sound | Label: enemy kind
	EventEnemyKilled

	// EventPlayerHurt signals damage applied to the player
	// Trigger: collision table | Amount: damage after clamping
	EventPlayerHurt

	// EventPlayerDied signals the player's health reaching zero, emitted once
	EventPlayerDied

	// EventPickupCollected signals a pickup effect applied to the player
	// Label: pickup kind | Amount: pickup value
	EventPickupCollected

	// EventWaveStarted signals the Director starting a wave | Amount: wave number
	EventWaveStarted

	// EventGameOver signals the transition into the game over state | Amount: final score
	EventGameOver

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventShotFired:       "shot_fired",
	EventEnemyHit:        "enemy_hit",
	EventEnemyKilled:     "enemy_killed",
	EventPlayerHurt:      "player_hurt",
	EventPlayerDied:      "player_died",
	EventPickupCollected: "pickup_collected",
	EventWaveStarted:     "wave_started",
	EventGameOver:        "game_over",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return eventNames[t]
}

// GameEvent is a flat event record, no payload allocation
type GameEvent struct {
	Type     EventType
	EntityID uint64
	Label    string
	Amount   float64
	Pos      vmath.Vec2
}
