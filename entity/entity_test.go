package entity

import (
	"image"
	"math"
	"testing"

	"github.com/lixenwraith/dead-arena/events"
	"github.com/lixenwraith/dead-arena/parameter"
	"github.com/lixenwraith/dead-arena/render"
	"github.com/lixenwraith/dead-arena/vmath"
)

var testArena = vmath.Rect{W: 800, H: 600}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func countType(evs []events.GameEvent, t events.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func TestPlayerDamageClampsAndMarks(t *testing.T) {
	q := events.NewQueue()
	p := NewPlayer(vmath.V2(400, 300), testArena, q)
	p.Player.Health = 5

	p.TakeDamage(10)
	if p.Player.Health != 0 {
		t.Errorf("health must clamp to 0, got %v", p.Player.Health)
	}
	if !p.MarkedForDeletion {
		t.Error("player at 0 health must be marked for deletion")
	}

	p.TakeDamage(10)
	evs := q.Consume()
	if countType(evs, events.EventPlayerDied) != 1 {
		t.Errorf("expected exactly one death event, got %d", countType(evs, events.EventPlayerDied))
	}
	if countType(evs, events.EventPlayerHurt) != 1 {
		t.Errorf("damage after death must be ignored, got %d hurt events", countType(evs, events.EventPlayerHurt))
	}
	if evs[0].Amount != 5 {
		t.Errorf("hurt amount should be clamped damage 5, got %v", evs[0].Amount)
	}
}

func TestPlayerMovementClampedToArena(t *testing.T) {
	p := NewPlayer(vmath.V2(30, 300), testArena, nil)
	p.Player.Move = vmath.V2(-1, 0)
	p.Update(1)
	if p.Pos.X != 0 {
		t.Errorf("expected clamp to left edge, got %v", p.Pos.X)
	}

	p.Player.Move = vmath.V2(0, 1)
	p.Update(10)
	if p.Pos.Y != testArena.H-p.H {
		t.Errorf("expected clamp to bottom edge, got %v", p.Pos.Y)
	}
}

func TestShootPatterns(t *testing.T) {
	tests := []struct {
		name     string
		weapon   Weapon
		count    int
		speed    float64
		damage   float64
		ammoLeft int
	}{
		{"pistol", WeaponPistol, 1, parameter.ProjectileSpeed, parameter.PistolDamage, parameter.AmmoUnlimited},
		{"shotgun", WeaponShotgun, parameter.ShotgunPellets, parameter.ProjectileSpeed, parameter.ShotgunDamage, parameter.ShotgunInitialAmmo - 1},
		{"rifle", WeaponRifle, 1, parameter.ProjectileSpeed * parameter.RifleSpeedFactor, parameter.RifleDamage, parameter.RifleInitialAmmo - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(vmath.V2(400, 300), testArena, nil)
			p.SwitchWeapon(tt.weapon)
			shots := p.Shoot(vmath.NewFastRand(7))

			if len(shots) != tt.count {
				t.Fatalf("expected %d projectiles, got %d", tt.count, len(shots))
			}
			for _, s := range shots {
				if s.Kind != KindProjectile || s.Projectile.Source != SourcePlayer {
					t.Fatal("shot must be a player projectile")
				}
				if !near(s.Projectile.Velocity.Length(), tt.speed) {
					t.Errorf("expected speed %v, got %v", tt.speed, s.Projectile.Velocity.Length())
				}
				if s.Projectile.Damage != tt.damage {
					t.Errorf("expected damage %v, got %v", tt.damage, s.Projectile.Damage)
				}
				if s.Center() != p.Center() {
					t.Errorf("projectile should start at player center, got %v", s.Center())
				}
			}
			if p.Player.Ammo[tt.weapon] != tt.ammoLeft {
				t.Errorf("expected ammo %d, got %d", tt.ammoLeft, p.Player.Ammo[tt.weapon])
			}
			if p.Player.ShootCooldown != tt.weapon.FireInterval() {
				t.Errorf("expected cooldown %v, got %v", tt.weapon.FireInterval(), p.Player.ShootCooldown)
			}
		})
	}
}

func TestShotgunSpreadBounded(t *testing.T) {
	p := NewPlayer(vmath.V2(400, 300), testArena, nil)
	p.SwitchWeapon(WeaponShotgun)
	aim := p.Player.Direction.Angle()
	for _, s := range p.Shoot(vmath.NewFastRand(99)) {
		off := math.Abs(s.Projectile.Velocity.Angle() - aim)
		if off > parameter.ShotgunSpread+1e-9 {
			t.Errorf("pellet offset %v exceeds spread", off)
		}
	}
}

func TestShootRefused(t *testing.T) {
	p := NewPlayer(vmath.V2(400, 300), testArena, nil)
	p.Player.Ammo[WeaponPistol] = 0
	if shots := p.Shoot(nil); shots != nil {
		t.Errorf("empty weapon must not fire, got %d projectiles", len(shots))
	}
	if p.Player.ShootCooldown != 0 {
		t.Errorf("refused shot must leave cooldown untouched, got %v", p.Player.ShootCooldown)
	}

	p.SwitchWeapon(WeaponRifle)
	if p.Shoot(nil) == nil {
		t.Fatal("first rifle shot should fire")
	}
	ammo := p.Player.Ammo[WeaponRifle]
	if p.Shoot(nil) != nil {
		t.Error("shot during cooldown must be refused")
	}
	if p.Player.Ammo[WeaponRifle] != ammo {
		t.Error("refused shot must not consume ammo")
	}

	p.Update(parameter.RifleFireInterval)
	if p.Shoot(nil) == nil {
		t.Error("shot after cooldown should fire")
	}
}

func TestAmmoNeverNegative(t *testing.T) {
	p := NewPlayer(vmath.V2(400, 300), testArena, nil)
	p.SwitchWeapon(WeaponShotgun)
	for i := 0; i < parameter.ShotgunInitialAmmo+5; i++ {
		p.Player.ShootCooldown = 0
		p.Shoot(vmath.NewFastRand(1))
	}
	if p.Player.Ammo[WeaponShotgun] != 0 {
		t.Errorf("expected 0 ammo, got %d", p.Player.Ammo[WeaponShotgun])
	}
}

func TestSwitchWeaponUnknownIgnored(t *testing.T) {
	p := NewPlayer(vmath.V2(400, 300), testArena, nil)
	p.SwitchWeapon(Weapon(42))
	if p.Player.Weapon != WeaponPistol || p.Player.FireInterval != parameter.PistolFireInterval {
		t.Error("unknown weapon must be a no-op")
	}
	if _, ok := ParseWeapon("bazooka"); ok {
		t.Error("unknown weapon name must not parse")
	}
	if w, ok := ParseWeapon("rifle"); !ok || w != WeaponRifle {
		t.Error("rifle should parse")
	}
}

func TestAimUnchangedAtCenter(t *testing.T) {
	p := NewPlayer(vmath.V2(400, 300), testArena, nil)
	p.Aim(vmath.V2(400, 500))
	down := p.Player.Direction
	if !near(down.X, 0) || !near(down.Y, 1) {
		t.Fatalf("expected down aim, got %v", down)
	}
	p.Aim(p.Center())
	if p.Player.Direction != down {
		t.Errorf("aim at center must keep direction, got %v", p.Player.Direction)
	}
}

func TestEnemyChasesTarget(t *testing.T) {
	player := NewPlayer(vmath.V2(115, 15), testArena, nil)
	e := NewEnemy(EnemyNormal, vmath.V2(0, 0), player, nil)
	e.Update(0.5)
	if !near(e.Pos.X, parameter.EnemyNormalSpeed*0.5) || !near(e.Pos.Y, 0) {
		t.Errorf("expected enemy at (40, 0), got %v", e.Pos)
	}

	inert := NewEnemy(EnemyFast, vmath.V2(10, 10), nil, nil)
	inert.Update(1)
	if inert.Pos != vmath.V2(10, 10) {
		t.Errorf("enemy without target must not move, got %v", inert.Pos)
	}
}

func TestEnemyKinds(t *testing.T) {
	tank := NewEnemy(EnemyTank, vmath.Vec2{}, nil, nil)
	if tank.Enemy.Health != parameter.EnemyTankHealth || tank.W != parameter.EnemyTankSize {
		t.Errorf("tank stats wrong: %+v", tank.Enemy)
	}
	if EnemyFast.Score() != parameter.EnemyFastScore {
		t.Errorf("unexpected fast score %d", EnemyFast.Score())
	}
	fallback := NewEnemy(EnemyKind(9), vmath.Vec2{}, nil, nil)
	if fallback.Enemy.Kind != EnemyNormal {
		t.Error("unknown kind should fall back to normal")
	}
}

func TestPickupKinds(t *testing.T) {
	if _, ok := ParsePickupKind("ammo_plasma"); ok {
		t.Error("unknown pickup must not parse")
	}
	k, ok := ParsePickupKind("ammo_shotgun")
	if !ok || k != PickupAmmoShotgun || k.DefaultValue() != parameter.PickupShotgunValue {
		t.Errorf("ammo_shotgun parse mismatch: %v %v", k, ok)
	}

	p := NewPlayer(vmath.V2(400, 300), testArena, nil)
	before := p.Player.Ammo
	PickupKind(17).Apply(p, 100)
	if p.Player.Ammo != before {
		t.Error("unknown pickup kind must be a no-op")
	}
}

type fakeImages map[string]image.Image

func (f fakeImages) Image(key string) (image.Image, bool) {
	img, ok := f[key]
	return img, ok
}

func TestRenderPrimitives(t *testing.T) {
	r := render.NewRecorder(800, 600)
	r.Clear(render.RGBArena)

	p := NewPlayer(vmath.V2(400, 300), testArena, nil)
	p.Render(r, nil)
	if r.Count(render.OpFillRect) != 2 {
		t.Errorf("player should draw body and barrel, got %d fills", r.Count(render.OpFillRect))
	}
	if r.Depth() != 0 {
		t.Error("player render must restore the transform stack")
	}

	r.Clear(render.RGBArena)
	e := NewEnemy(EnemyNormal, vmath.V2(10, 10), nil, nil)
	e.Render(r, nil)
	if r.Count(render.OpFillRect) != 1 {
		t.Errorf("healthy enemy draws no health bar, got %d fills", r.Count(render.OpFillRect))
	}
	e.Enemy.Health = 50
	e.Render(r, nil)
	if r.Count(render.OpFillRect) != 4 {
		t.Errorf("damaged enemy should add a health bar, got %d fills", r.Count(render.OpFillRect))
	}

	r.Clear(render.RGBArena)
	NewPickup(PickupHealth, 25, vmath.V2(50, 50), nil).Render(r, nil)
	if texts := r.Texts(); len(texts) != 1 || texts[0] != "+" {
		t.Errorf("health pickup glyph missing: %v", texts)
	}

	r.Clear(render.RGBArena)
	NewObstacle(vmath.Rect{X: 100, Y: 100, W: 60, H: 60}).Render(r, nil)
	if r.Count(render.OpFillRect) != 1 || r.Count(render.OpStrokeRect) != 1 {
		t.Error("obstacle should be filled and stroked")
	}
}

func TestRenderUsesImages(t *testing.T) {
	r := render.NewRecorder(800, 600)
	r.Clear(render.RGBArena)
	imgs := fakeImages{"player": image.NewRGBA(image.Rect(0, 0, 4, 4))}

	p := NewPlayer(vmath.V2(400, 300), testArena, nil)
	p.Render(r, imgs)
	if r.Count(render.OpDrawImage) != 1 || r.Count(render.OpFillRect) != 0 {
		t.Error("registered sprite should replace primitives")
	}

	NewEnemy(EnemyTank, vmath.V2(10, 10), nil, nil).Render(r, imgs)
	if r.Count(render.OpFillRect) != 1 {
		t.Error("enemy without sprite should fall back to a filled rect")
	}
}
