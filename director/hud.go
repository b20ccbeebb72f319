package director

import (
	"fmt"

	"github.com/lixenwraith/dead-arena/parameter"
	"github.com/lixenwraith/dead-arena/render"
)

// HUD layout in world units
const (
	hudPad      = 10.0
	hudLine     = 20.0
	hudBarW     = 200.0
	hudBarH     = 12.0
	loadingBarW = 300.0
	loadingBarH = 16.0
)

// ammoText renders an ammo count, unlimited pools show "inf"
func ammoText(n int) string {
	if n == parameter.AmmoUnlimited {
		return "inf"
	}
	return fmt.Sprintf("%d", n)
}

// drawHUD draws player health, weapon and run counters over the scene
func (d *Director) drawHUD() {
	s := d.surface
	if p := d.player; p != nil {
		ps := p.Player
		frac := 0.0
		if ps.MaxHealth > 0 {
			frac = ps.Health / ps.MaxHealth
		}
		s.FillRect(hudPad, hudPad, hudBarW, hudBarH, render.RGBBarBack)
		s.FillRect(hudPad, hudPad, hudBarW*frac, hudBarH, render.RGBHealthBar)
		s.Text(hudPad, hudPad+hudLine, fmt.Sprintf("HP %.0f/%.0f", ps.Health, ps.MaxHealth), render.RGBText, render.AlignLeft)
		s.Text(hudPad, hudPad+2*hudLine,
			fmt.Sprintf("%s %s", ps.Weapon, ammoText(ps.Ammo[ps.Weapon])), render.RGBAmmo, render.AlignLeft)
	}

	right := d.arena.W - hudPad
	s.Text(right, hudPad, fmt.Sprintf("Wave %d", d.wave), render.RGBText, render.AlignRight)
	s.Text(right, hudPad+hudLine, fmt.Sprintf("Score %d", d.score), render.RGBText, render.AlignRight)
	s.Text(right, hudPad+2*hudLine, fmt.Sprintf("Enemies %d", d.zombiesRemaining+d.aliveEnemies()), render.RGBTextDim, render.AlignRight)
}

func (d *Director) drawLoading() {
	s := d.surface
	s.Clear(render.RGBBlack)
	cx, cy := d.arena.W/2, d.arena.H/2
	progress := d.assets.Progress()

	s.Text(cx, cy-hudLine, "LOADING", render.RGBText, render.AlignCenter)
	s.StrokeRect(cx-loadingBarW/2, cy, loadingBarW, loadingBarH, render.RGBBorder)
	s.FillRect(cx-loadingBarW/2, cy, loadingBarW*progress, loadingBarH, render.RGBHealthBar)
	s.Text(cx, cy+2*hudLine, fmt.Sprintf("%.0f%%", progress*100), render.RGBTextDim, render.AlignCenter)
}

func (d *Director) drawTitle() {
	s := d.surface
	s.Clear(render.RGBBlack)
	cx, cy := d.arena.W/2, d.arena.H/2

	s.Text(cx, cy-2*hudLine, "DEAD ARENA", render.RGBTitle, render.AlignCenter)
	s.Text(cx, cy, "Click or press fire to start", render.RGBText, render.AlignCenter)
	s.Text(cx, cy+hudLine, "WASD move  mouse aim  1-3 weapon  P pause", render.RGBTextDim, render.AlignCenter)
	if d.highScore > 0 {
		s.Text(cx, cy+3*hudLine, fmt.Sprintf("High score %d", d.highScore), render.RGBAmmo, render.AlignCenter)
	}
}

func (d *Director) drawPaused() {
	s := d.surface
	cx, cy := d.arena.W/2, d.arena.H/2
	s.Text(cx, cy-hudLine, "PAUSED", render.RGBTitle, render.AlignCenter)
	s.Text(cx, cy+hudLine, "Pause to resume, click to restart", render.RGBText, render.AlignCenter)
}

func (d *Director) drawGameOver() {
	s := d.surface
	cx, cy := d.arena.W/2, d.arena.H/2
	s.Text(cx, cy-2*hudLine, "GAME OVER", render.RGBTitle, render.AlignCenter)
	s.Text(cx, cy, fmt.Sprintf("Score %d  Wave %d  Kills %d", d.score, d.wave, d.kills), render.RGBText, render.AlignCenter)
	s.Text(cx, cy+hudLine, fmt.Sprintf("High score %d", d.highScore), render.RGBAmmo, render.AlignCenter)
	s.Text(cx, cy+3*hudLine, "Click to play again", render.RGBTextDim, render.AlignCenter)
}

// drawOverlay lists status metrics in the bottom-left corner
func (d *Director) drawOverlay() {
	lines := d.reg.Lines()
	y := d.arena.H - hudPad - float64(len(lines))*hudLine
	for _, l := range lines {
		d.surface.Text(hudPad, y, l, render.RGBTextDim, render.AlignLeft)
		y += hudLine
	}
}
