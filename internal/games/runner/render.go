package runner

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	GroundChar     = '═'
	ObstacleChar   = '▓'
	SpikeChar      = '▲'
	ProjectileChar = '●'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// viewport maps world units onto the character grid between the HUD and
// the ground row. The ground line lands on the boundary above the last row.
type viewport struct {
	cellW, cellH float64
	groundRow    int
}

func newViewport(dst *core.Screen, world config.RunnerWorld) viewport {
	cols := core.Max(dst.Width(), 1)
	rows := core.Max(dst.Height()-hudRows-1, 1)
	return viewport{
		cellW:     world.Width / float64(cols),
		cellH:     world.GroundLine() / float64(rows),
		groundRow: hudRows + rows,
	}
}

// rect converts a world box to screen cells, clipped above the ground row.
func (v viewport) rect(b core.Box) core.Rect {
	r := b.Scale(v.cellW, v.cellH)
	r.Y += hudRows
	if r.Bottom() > v.groundRow && r.Y < v.groundRow {
		r.H = v.groundRow - r.Y
	}
	return r
}

// Render draws the session into dst: HUD, ground, player, obstacles and
// projectiles, then the game-over banner when the session has stopped.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	vp := newViewport(dst, g.cfg.World)
	s := g.session

	dst.DrawHLine(0, vp.groundRow, dst.Width(), GroundChar, core.ColorGreen)

	g.drawPlayer(dst, vp)

	for _, o := range s.Obstacles {
		ch := ObstacleChar
		if o.Oscillate {
			ch = SpikeChar
		}
		dst.DrawRect(vp.rect(o.Box()), ch, o.Color)
	}

	for _, b := range s.Projectiles {
		dst.DrawRect(vp.rect(b.Box()), ProjectileChar, b.Color)
	}

	scoreText := fmt.Sprintf(" Score: %d  HI: %d ", s.Score, g.high)
	dst.DrawTextColor(2, 0, scoreText, core.ColorWhite)

	speedText := fmt.Sprintf(" Spd: %.1f  Skin: %s ", s.Speed, g.Skin().Name)
	if g.muted {
		speedText = fmt.Sprintf(" Spd: %.1f  Skin: %s (muted) ", s.Speed, g.Skin().Name)
	}
	dst.DrawTextColor(dst.Width()-len([]rune(speedText))-2, 0, speedText, core.ColorGray)

	if !s.Running() {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Final score: %d", s.Score))
	}
}

// drawPlayer stretches the active skin's sprite over the player's cells.
// Scaled skins grow upward so the feet stay on the ground.
func (g *Game) drawPlayer(dst *core.Screen, vp viewport) {
	skin := g.Skin()
	p := g.session.Player

	box := p.Box()
	if skin.Scale > 0 && skin.Scale != 1 {
		box.W *= skin.Scale
		box.H *= skin.Scale
		box.Y -= box.H - p.Size
	}

	sprite := skin.SpriteFor(p, g.cfg.World.Ground)
	r := vp.rect(box)
	for cy := 0; cy < r.H; cy++ {
		for cx := 0; cx < r.W; cx++ {
			if ch := sprite.At(cx, cy, r.W, r.H); ch != ' ' {
				dst.SetColor(r.X+cx, r.Y+cy, ch, skin.Color)
			}
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorRed)
	dst.DrawTextCentered(box.Y+1, title, core.ColorRed)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorWhite)
}
