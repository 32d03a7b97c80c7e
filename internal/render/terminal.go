package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/rudearena/server/internal/core/ecs"
	"github.com/rudearena/server/internal/world"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	styleDefault  = tcell.StyleDefault
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleFlash    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
	styleThrown   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleInsult   = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleHurt     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon)
	styleOverlay  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy).Bold(true)
	styleGameOver = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true)
)

// sprite is the visual handle for one entity. Exactly one of enemy and
// projectile is set.
type sprite struct {
	enemy      *world.Enemy
	projectile *world.Projectile
}

// HUD is the per-frame status the simulation does not own.
type HUD struct {
	Weapon string
	Pose   world.Vec3 // view-model offset of the equipped weapon
	Locked bool
}

// kickThreshold is the vertical pose offset above which the weapon label
// shows the firing kick. Idle sway stays below it.
const kickThreshold = 0.03

// Terminal draws the arena top-down, -Z up. It keeps its own id -> sprite
// table filled by the world's add/remove notifications.
type Terminal struct {
	screen  tcell.Screen
	sprites map[ecs.EntityID]sprite
	title   cases.Caser
	ids     []ecs.EntityID
}

func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen:  screen,
		sprites: make(map[ecs.EntityID]sprite),
		title:   cases.Title(language.English),
	}
}

func (t *Terminal) AddEnemy(e *world.Enemy)           { t.sprites[e.ID] = sprite{enemy: e} }
func (t *Terminal) RemoveEnemy(id ecs.EntityID)       { delete(t.sprites, id) }
func (t *Terminal) AddProjectile(p *world.Projectile) { t.sprites[p.ID] = sprite{projectile: p} }
func (t *Terminal) RemoveProjectile(id ecs.EntityID)  { delete(t.sprites, id) }

// Sprites returns how many visual handles are live.
func (t *Terminal) Sprites() int { return len(t.sprites) }

// Draw renders one frame.
func (t *Terminal) Draw(ws *world.State, hud HUD) {
	t.screen.Clear()
	w, h := t.screen.Size()
	if w < 20 || h < 8 {
		t.text(0, 0, "terminal too small", styleDefault)
		t.screen.Show()
		return
	}

	t.drawHUD(ws, hud, w)
	t.drawWalls(w, h)

	t.ids = t.ids[:0]
	for id := range t.sprites {
		t.ids = append(t.ids, id)
	}
	sort.Slice(t.ids, func(i, j int) bool { return t.ids[i] < t.ids[j] })
	for _, id := range t.ids {
		s := t.sprites[id]
		switch {
		case s.projectile != nil:
			t.drawProjectile(s.projectile)
		case s.enemy != nil:
			t.drawEnemy(s.enemy, ws.Now)
		}
	}
	t.drawPlayer(ws.Player)

	switch {
	case ws.GameOver:
		t.banner(w, h, fmt.Sprintf(" GAME OVER  kills %d  survived %.0fs  [Enter] restart ", ws.Kills, ws.Now), styleGameOver)
	case !hud.Locked:
		t.banner(w, h, " PAUSED  [Enter] play  [Esc] pause  [Ctrl-C] quit ", styleOverlay)
	}
	t.screen.Show()
}

// Project maps a floor position to a screen cell inside the walls.
func (t *Terminal) Project(x, z float64) (col, row int, ok bool) {
	w, h := t.screen.Size()
	innerW, innerH := w-2, h-3
	if innerW < 1 || innerH < 1 {
		return 0, 0, false
	}
	fx := (x + world.ArenaHalfExtent) / (2 * world.ArenaHalfExtent)
	fz := (z + world.ArenaHalfExtent) / (2 * world.ArenaHalfExtent)
	if fx < 0 || fx > 1 || fz < 0 || fz > 1 {
		return 0, 0, false
	}
	col = 1 + int(fx*float64(innerW-1)+0.5)
	row = 2 + int(fz*float64(innerH-1)+0.5)
	return col, row, true
}

func (t *Terminal) drawHUD(ws *world.State, hud HUD, w int) {
	style := styleHUD
	if ws.Player.Health <= world.PlayerHealth/4 {
		style = styleHurt
	}
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, 0, ' ', nil, style)
	}
	x := t.text(1, 0, fmt.Sprintf("HP %3d  Kills %d  Enemies %d  Weapon ",
		ws.Player.Health, ws.Kills, ws.EnemyCount()), style)
	label := style
	if math.Abs(hud.Pose.Y) > kickThreshold {
		label = style.Reverse(true)
	}
	x = t.text(x, 0, t.title.String(hud.Weapon), label)
	t.text(x, 0, fmt.Sprintf("  %.1fs", ws.Now), style)
}

func (t *Terminal) drawWalls(w, h int) {
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, 1, '─', nil, styleWall)
		t.screen.SetContent(x, h-1, '─', nil, styleWall)
	}
	for y := 1; y < h; y++ {
		t.screen.SetContent(0, y, '│', nil, styleWall)
		t.screen.SetContent(w-1, y, '│', nil, styleWall)
	}
	t.screen.SetContent(0, 1, '┌', nil, styleWall)
	t.screen.SetContent(w-1, 1, '┐', nil, styleWall)
	t.screen.SetContent(0, h-1, '└', nil, styleWall)
	t.screen.SetContent(w-1, h-1, '┘', nil, styleWall)
}

func (t *Terminal) drawEnemy(e *world.Enemy, now float64) {
	col, row, ok := t.Project(e.Position.X, e.Position.Z)
	if !ok {
		return
	}
	style := styleEnemy
	if e.Flashing(now) {
		style = styleFlash
	}
	t.screen.SetContent(col, row, 'Z', nil, style)
}

func (t *Terminal) drawProjectile(p *world.Projectile) {
	col, row, ok := t.Project(p.Position.X, p.Position.Z)
	if !ok {
		return
	}
	if p.Kind == world.ProjectileInsult {
		t.screen.SetContent(col, row, '!', nil, styleInsult)
		return
	}
	t.screen.SetContent(col, row, '*', nil, styleThrown)
}

func (t *Terminal) drawPlayer(p *world.Player) {
	col, row, ok := t.Project(p.Position.X, p.Position.Z)
	if !ok {
		return
	}
	fwd := p.Forward()
	dc, dr := int(math.Round(fwd.X)), int(math.Round(fwd.Z))
	if dc != 0 || dr != 0 {
		t.screen.SetContent(col+dc, row+dr, facingGlyph(dc, dr), nil, stylePlayer)
	}
	t.screen.SetContent(col, row, '@', nil, stylePlayer)
}

func facingGlyph(dc, dr int) rune {
	switch {
	case dc == 0:
		return '│'
	case dr == 0:
		return '─'
	case dc == dr:
		return '╲'
	}
	return '╱'
}

func (t *Terminal) banner(w, h int, msg string, style tcell.Style) {
	runes := []rune(msg)
	x := (w - len(runes)) / 2
	if x < 1 {
		x = 1
	}
	t.text(x, h/2, msg, style)
}

// text writes s from x and returns the column after it.
func (t *Terminal) text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
