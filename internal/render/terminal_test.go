package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rudearena/server/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(82, 43)
	t.Cleanup(screen.Fini)
	return NewTerminal(screen), screen
}

func runeAt(s tcell.Screen, col, row int) rune {
	r, _, _, _ := s.GetContent(col, row)
	return r
}

func rowText(s tcell.Screen, row int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(s, x, row))
	}
	return b.String()
}

func TestProjectCorners(t *testing.T) {
	term, _ := newTestTerminal(t)

	col, row, ok := term.Project(0, 0)
	require.True(t, ok)
	assert.Equal(t, 41, col)
	assert.Equal(t, 22, row)

	col, row, ok = term.Project(-world.ArenaHalfExtent, -world.ArenaHalfExtent)
	require.True(t, ok)
	assert.Equal(t, 1, col)
	assert.Equal(t, 2, row)

	col, row, ok = term.Project(world.ArenaHalfExtent, world.ArenaHalfExtent)
	require.True(t, ok)
	assert.Equal(t, 80, col)
	assert.Equal(t, 41, row)

	_, _, ok = term.Project(world.ArenaHalfExtent+1, 0)
	assert.False(t, ok)
}

func TestSideTableFollowsWorld(t *testing.T) {
	term, _ := newTestTerminal(t)
	ws := world.NewState()
	ws.SetRenderer(term)

	e := ws.SpawnEnemy(world.Vec3{X: 10})
	p := ws.AddProjectile(world.Projectile{Position: world.Vec3{Z: -10, Y: 1}, Life: 1})
	assert.Equal(t, 2, term.Sprites())

	ws.RemoveEnemy(e.ID)
	ws.RemoveEnemy(e.ID)
	ws.RemoveProjectile(p.ID)
	assert.Zero(t, term.Sprites())

	ws.SpawnEnemy(world.Vec3{X: 10})
	ws.Reset()
	assert.Zero(t, term.Sprites())
}

func TestDrawPlacesGlyphs(t *testing.T) {
	term, screen := newTestTerminal(t)
	ws := world.NewState()
	ws.SetRenderer(term)

	e := ws.SpawnEnemy(world.Vec3{X: 20, Z: 20})
	ws.AddProjectile(world.Projectile{Kind: world.ProjectileThrown, Position: world.Vec3{X: -20, Y: 1}})
	ws.AddProjectile(world.Projectile{Kind: world.ProjectileInsult, Position: world.Vec3{Z: -20, Y: 1}})

	term.Draw(ws, HUD{Weapon: "cigarette", Locked: true})

	col, row, _ := term.Project(0, 0)
	assert.Equal(t, '@', runeAt(screen, col, row))
	assert.Equal(t, '│', runeAt(screen, col, row-1), "facing -Z is up")

	col, row, _ = term.Project(e.Position.X, e.Position.Z)
	assert.Equal(t, 'Z', runeAt(screen, col, row))
	col, row, _ = term.Project(-20, 0)
	assert.Equal(t, '*', runeAt(screen, col, row))
	col, row, _ = term.Project(0, -20)
	assert.Equal(t, '!', runeAt(screen, col, row))

	hud := rowText(screen, 0)
	assert.Contains(t, hud, "HP 100")
	assert.Contains(t, hud, "Weapon Cigarette")
	assert.Contains(t, hud, "Enemies 1")
	assert.NotContains(t, rowText(screen, 21), "PAUSED")
}

func TestOverlays(t *testing.T) {
	term, screen := newTestTerminal(t)
	ws := world.NewState()

	term.Draw(ws, HUD{Weapon: "insult"})
	assert.Contains(t, rowText(screen, 21), "PAUSED")

	ws.GameOver = true
	ws.Kills = 7
	term.Draw(ws, HUD{Weapon: "insult"})
	banner := rowText(screen, 21)
	assert.Contains(t, banner, "GAME OVER")
	assert.Contains(t, banner, "kills 7")
	assert.NotContains(t, banner, "PAUSED")
}

func TestTinyScreen(t *testing.T) {
	term, screen := newTestTerminal(t)
	screen.SetSize(10, 4)
	term.Draw(world.NewState(), HUD{})
	assert.Contains(t, rowText(screen, 0), "terminal")
}

func TestWeaponLabelKick(t *testing.T) {
	term, screen := newTestTerminal(t)
	ws := world.NewState()

	styleAt := func() tcell.Style {
		hud := rowText(screen, 0)
		col := strings.Index(hud, "Insult")
		require.GreaterOrEqual(t, col, 0)
		_, _, style, _ := screen.GetContent(col, 0)
		return style
	}

	term.Draw(ws, HUD{Weapon: "insult", Locked: true, Pose: world.Vec3{Y: 0.015}})
	_, _, attrs := styleAt().Decompose()
	assert.Zero(t, attrs&tcell.AttrReverse, "idle sway")

	term.Draw(ws, HUD{Weapon: "insult", Locked: true, Pose: world.Vec3{Y: 0.2}})
	_, _, attrs = styleAt().Decompose()
	assert.NotZero(t, attrs&tcell.AttrReverse, "firing kick")
}
