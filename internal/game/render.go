package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/darkpath/internal/core"
	"github.com/vovakirdan/darkpath/internal/level"
	"github.com/vovakirdan/darkpath/internal/terrain"
)

// Visual characters for rendering
const (
	BaseChar      = '█'
	MezzanineChar = '░'
	PortalChar    = '▓'
	PickupHubChar = '◆'
	PickupChar    = '◇'
	ConsumedChar  = '·'
	PlayerChar    = '@'
)

// hudRows is the number of rows reserved at the top of the screen.
const hudRows = 1

// camera maps world coordinates to screen cells. The view is rotated by
// 180 degrees: world x decreases to the right of the screen and world y
// grows upward.
type camera struct {
	x, y      float64
	cellW     float64
	cellH     float64
	centerCol int
	centerRow int
	top       int
}

func (g *Game) camera(dst *core.Screen) camera {
	viewH := dst.Height() - hudRows
	if viewH < 1 {
		viewH = 1
	}
	p := g.world.Player().Pos
	return camera{
		x:         p.X,
		y:         math.Max(float64(viewH)*g.opts.CellHeight/2, p.Y),
		cellW:     g.opts.CellWidth,
		cellH:     g.opts.CellHeight,
		centerCol: dst.Width() / 2,
		centerRow: hudRows + viewH/2,
		top:       hudRows,
	}
}

// worldX returns the world x at the centre of a screen column.
func (c camera) worldX(col int) float64 {
	return c.x - float64(col-c.centerCol)*c.cellW
}

// column returns the screen column containing world x.
func (c camera) column(x float64) int {
	return c.centerCol + int(math.Floor((c.x-x)/c.cellW+0.5))
}

// row returns the screen row containing world y.
func (c camera) row(y float64) int {
	return c.centerRow - int(math.Floor((y-c.y)/c.cellH))
}

// rowMid returns the world y at the middle of a screen row.
func (c camera) rowMid(r int) float64 {
	return c.y + (float64(c.centerRow-r)+0.5)*c.cellH
}

// Render draws the active level, the player and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	cam := g.camera(dst)
	l := g.world.ActiveLevel()

	if g.opts.ShowMezzanine {
		g.drawLayer(dst, cam, l, terrain.Mezzanine, MezzanineChar, core.ColorDarkGray)
	}
	g.drawLayer(dst, cam, l, terrain.Base, BaseChar, core.ColorGray)
	g.drawEntities(dst, cam, l)

	p := g.world.Player().Pos
	// The player stands on the surface, so draw it in the cell just above y.
	dst.SetColored(cam.column(p.X), cam.row(p.Y+cam.cellH/2), PlayerChar, core.ColorBrightWhite)

	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press "+g.opts.PauseKey+" to resume")
	}
}

// drawLayer fills every cell whose centre lies below the layer surface.
// Columns without materialized terrain stay empty.
func (g *Game) drawLayer(dst *core.Screen, cam camera, l *level.Level, layer terrain.Layer, r rune, c core.Color) {
	for col := 0; col < dst.Width(); col++ {
		h := l.Height(cam.worldX(col), layer, false)
		if h == terrain.OutOfRange {
			continue
		}
		row := cam.top
		for row < dst.Height() && cam.rowMid(row) >= float64(h) {
			row++
		}
		dst.DrawVLine(col, row, dst.Height()-row, r, c)
	}
}

func (g *Game) drawEntities(dst *core.Screen, cam camera, l *level.Level) {
	half := level.EntitySize / 2
	for i := range l.Entities {
		e := &l.Entities[i]
		x := e.Position.X
		y := l.ResolveY(e)

		r, c := entityGlyph(e)
		// Columns are mirrored, so the box's low x edge is its right-hand column.
		left := cam.column(x + half)
		right := cam.column(x - half)
		top := cam.row(y + level.EntitySize - cam.cellH/2)
		bottom := cam.row(y + cam.cellH/2)
		if right < 0 || left >= dst.Width() || bottom < cam.top || top >= dst.Height() {
			continue
		}
		left = core.Clamp(left, 0, dst.Width()-1)
		right = core.Min(right, dst.Width()-1)
		top = core.Clamp(top, cam.top, dst.Height()-1)
		bottom = core.Min(bottom, dst.Height()-1)
		for row := top; row <= bottom; row++ {
			for col := left; col <= right; col++ {
				dst.SetColored(col, row, r, c)
			}
		}
	}
}

func entityGlyph(e *level.Entity) (rune, core.Color) {
	switch {
	case e.Kind == level.KindPortal:
		return PortalChar, core.ColorCyan
	case !e.Active:
		return ConsumedChar, core.ColorDarkGray
	case !e.Payload.HasTarget:
		return PickupHubChar, core.ColorYellow
	default:
		return PickupChar, core.ColorYellow
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	p := g.world.Player().Pos
	l := g.world.ActiveLevel()
	kind := "level"
	if l.PortalRoom {
		kind = "hub"
	}
	hud := fmt.Sprintf(" %s %d/%d  frontier %d  x %.0f y %.0f  score %d  %3.0f fps ",
		kind, g.world.Active(), len(g.world.Levels())-1, l.Terrain.Len(), p.X, p.Y, g.score, g.fps)
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)

	if g.message != "" {
		msg := " " + g.message + " "
		x := dst.Width() - len([]rune(msg))
		if x < len([]rune(hud)) {
			x = len([]rune(hud))
		}
		dst.DrawTextColored(x, 0, msg, core.ColorYellow)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
