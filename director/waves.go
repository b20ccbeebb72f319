package director

import (
	"github.com/lixenwraith/dead-arena/entity"
	"github.com/lixenwraith/dead-arena/parameter"
	"github.com/lixenwraith/dead-arena/vmath"
)

// WaveSize returns the number of enemies spawned in wave n
func WaveSize(n int) int {
	return parameter.WaveBaseEnemies + parameter.WaveEnemiesPerWave*n
}

// SpawnInterval returns seconds between enemy spawns in wave n
func SpawnInterval(wave int) float64 {
	cut := min(parameter.SpawnIntervalMaxCut, parameter.SpawnIntervalStep*float64(wave))
	return max(parameter.SpawnIntervalMin, parameter.SpawnIntervalBase-cut)
}

// RollEnemyKind picks a kind from a single uniform draw r in [0, 1)
// Tank is checked first, so the fast band is only reachable when the tank check fails
func RollEnemyKind(wave int, r float64) entity.EnemyKind {
	switch {
	case wave >= parameter.TankMinWave && r < parameter.TankChance:
		return entity.EnemyTank
	case wave >= parameter.FastMinWave && r < parameter.FastChance:
		return entity.EnemyFast
	default:
		return entity.EnemyNormal
	}
}

// SpawnPosition returns the top-left corner for an enemy of the given size
// placed outside a random arena edge at a random point along it
func SpawnPosition(arena vmath.Rect, size float64, rng *vmath.FastRand) vmath.Vec2 {
	off := parameter.SpawnEdgeOffset
	switch rng.Intn(4) {
	case 0: // Top
		return vmath.V2(arena.X+rng.Range(0, arena.W), arena.Y-off-size)
	case 1: // Right
		return vmath.V2(arena.X+arena.W+off, arena.Y+rng.Range(0, arena.H))
	case 2: // Bottom
		return vmath.V2(arena.X+rng.Range(0, arena.W), arena.Y+arena.H+off)
	default: // Left
		return vmath.V2(arena.X-off-size, arena.Y+rng.Range(0, arena.H))
	}
}

// SafeZone is the obstacle-free square around the arena center
func SafeZone(arena vmath.Rect) vmath.Rect {
	c := arena.Center()
	half := parameter.ObstacleSafeZone / 2
	return vmath.Rect{X: c.X - half, Y: c.Y - half, W: parameter.ObstacleSafeZone, H: parameter.ObstacleSafeZone}
}

// GenerateObstacles places up to ObstacleCount random boxes inside the margins
// Boxes never overlap each other or the safe zone; attempts are bounded so a
// crowded arena yields fewer boxes
func GenerateObstacles(arena vmath.Rect, rng *vmath.FastRand) []vmath.Rect {
	safe := SafeZone(arena)
	margin := parameter.ObstacleMargin
	placed := make([]vmath.Rect, 0, parameter.ObstacleCount)

	for attempt := 0; attempt < parameter.ObstaclePlaceAttempts && len(placed) < parameter.ObstacleCount; attempt++ {
		w := rng.Range(parameter.ObstacleMinSide, parameter.ObstacleMaxSide)
		h := rng.Range(parameter.ObstacleMinSide, parameter.ObstacleMaxSide)
		maxX := arena.W - 2*margin - w
		maxY := arena.H - 2*margin - h
		if maxX <= 0 || maxY <= 0 {
			continue
		}
		r := vmath.Rect{
			X: arena.X + margin + rng.Range(0, maxX),
			Y: arena.Y + margin + rng.Range(0, maxY),
			W: w,
			H: h,
		}
		if r.Overlaps(safe) || overlapsAny(r, placed) {
			continue
		}
		placed = append(placed, r)
	}
	return placed
}

// PlacePickup finds a pickup position inside the margins clear of obstacles
// Returns false when every attempt collided
func PlacePickup(arena vmath.Rect, obstacles []vmath.Rect, rng *vmath.FastRand) (vmath.Vec2, bool) {
	size := parameter.PickupSize
	margin := parameter.PickupMargin
	for attempt := 0; attempt < parameter.PickupPlaceAttempts; attempt++ {
		pos := vmath.V2(
			arena.X+margin+rng.Range(0, max(arena.W-2*margin-size, 0)),
			arena.Y+margin+rng.Range(0, max(arena.H-2*margin-size, 0)),
		)
		box := vmath.Rect{X: pos.X, Y: pos.Y, W: size, H: size}
		if !overlapsAny(box, obstacles) {
			return pos, true
		}
	}
	return vmath.Vec2{}, false
}

func overlapsAny(r vmath.Rect, others []vmath.Rect) bool {
	for _, o := range others {
		if r.Overlaps(o) {
			return true
		}
	}
	return false
}
