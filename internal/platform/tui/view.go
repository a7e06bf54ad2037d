package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/magic-tree/internal/assets"
	"github.com/vovakirdan/magic-tree/internal/core"
	"github.com/vovakirdan/magic-tree/internal/games/magictree"
)

// hudRows is the number of screen rows reserved for the status line.
const hudRows = 1

// Glyphs used for things that have no image asset.
const (
	boltRune  = '|'
	heartRune = '♥'
)

// Renderer draws a world snapshot into a cell screen, scaling world
// units to cells.
type Renderer struct {
	catalog *assets.Catalog
	tiers   []string // Image ID per collectible tier
}

// NewRenderer creates a renderer. tierNames are the collectible tier
// names in tier order; each selects the image "diamond_<name>".
func NewRenderer(catalog *assets.Catalog, tierNames []string) *Renderer {
	if catalog == nil {
		catalog = assets.NewCatalog()
	}
	ids := make([]string, len(tierNames))
	for i, n := range tierNames {
		ids[i] = "diamond_" + n
	}
	return &Renderer{catalog: catalog, tiers: ids}
}

// HUD is the text shown in the status line.
type HUD struct {
	NowPlaying string
	Status     string
	Summary    []string // Drawn under the end-of-run overlay
}

// viewport maps world coordinates to screen cells.
type viewport struct {
	sx, sy float64
	scroll float64
	top    int // First playfield row
	w, h   int // Playfield size in cells
}

func newViewport(s *core.Screen, snap *magictree.Snapshot) viewport {
	h := max(s.Height()-hudRows, 1)
	vp := viewport{top: hudRows, w: s.Width(), h: h, scroll: snap.Scroll}
	if snap.ViewW > 0 && snap.ViewH > 0 {
		vp.sx = float64(vp.w) / snap.ViewW
		vp.sy = float64(h) / snap.ViewH
	}
	return vp
}

// rect converts a world box to a cell box at least one cell in size.
func (v viewport) rect(x, y, w, h float64) (int, int, int, int) {
	cx := int(math.Floor(x * v.sx))
	cy := int(math.Floor((y-v.scroll)*v.sy)) + v.top
	cw := max(int(math.Round(w*v.sx)), 1)
	ch := max(int(math.Round(h*v.sy)), 1)
	return cx, cy, cw, ch
}

func (v viewport) clip(x, y, w, h int) (int, int, int, int) {
	if y < v.top {
		h -= v.top - y
		y = v.top
	}
	if bottom := v.top + v.h; y+h > bottom {
		h = bottom - y
	}
	return x, y, w, h
}

func (r *Renderer) glyph(id string) assets.Glyph {
	g, _ := r.catalog.Glyph(id)
	return g
}

func (r *Renderer) fill(s *core.Screen, v viewport, box core.Rect, g assets.Glyph, ch rune) {
	x, y, w, h := v.clip(v.rect(box.X, box.Y, box.W, box.H))
	if h <= 0 {
		return
	}
	s.FillRect(x, y, w, h, ch, g.Color)
}

// Render draws the snapshot, HUD and any phase overlay.
func (r *Renderer) Render(s *core.Screen, snap *magictree.Snapshot, hud HUD) {
	s.Clear()
	v := newViewport(s, snap)
	if v.sx == 0 {
		return
	}

	r.drawBackground(s, v)

	plat := r.glyph("platform")
	for _, p := range snap.Platforms {
		r.fill(s, v, p.Bounds(), plat, plat.Rune)
	}
	for _, c := range snap.Collectibles {
		g := assets.Fallback
		if int(c.Tier) < len(r.tiers) {
			g = r.glyph(r.tiers[c.Tier])
		}
		r.fill(s, v, c.Bounds(), g, g.Rune)
	}
	apple := r.glyph("apple")
	for _, p := range snap.Projectiles {
		r.fill(s, v, p.Bounds(), apple, apple.Rune)
	}
	for _, e := range snap.Enemies {
		g := r.glyph(e.Kind.String())
		r.fill(s, v, core.NewRect(e.X, e.Y, e.W, e.H), g, g.Rune)
	}
	for _, h := range snap.Hazards {
		r.fill(s, v, h.Bounds(), assets.Glyph{Color: core.ColorBrightYellow}, boltRune)
	}

	p := snap.Player
	if !p.Invulnerable || snap.Tick%8 < 4 {
		g := r.glyph("player_spritesheet")
		r.fill(s, v, core.NewRect(p.X, p.Y, p.W, p.H), g, g.Frame(p.Frame))
	}

	r.drawHUD(s, snap, hud)
	r.drawOverlay(s, snap, hud.Summary)
}

// drawBackground scatters background glyphs that scroll with the world.
// A missing background image leaves the playfield blank.
func (r *Renderer) drawBackground(s *core.Screen, v viewport) {
	g := r.glyph("background")
	if g.Failed {
		return
	}
	offset := int(math.Floor(v.scroll * v.sy))
	for row := 0; row < v.h; row++ {
		worldRow := row + offset
		for col := 0; col < v.w; col++ {
			if (col*7+worldRow*13)%29 == 0 {
				s.SetColor(col, row+v.top, g.Rune, g.Color)
			}
		}
	}
}

func (r *Renderer) drawHUD(s *core.Screen, snap *magictree.Snapshot, hud HUD) {
	lives := strings.Repeat(string(heartRune), max(snap.Player.Lives, 0))
	line := fmt.Sprintf(" Score: %d  Lives: %s  Section: %d", snap.Score, lives, snap.Section+1)
	if hud.NowPlaying != "" {
		line += "  ♪ " + hud.NowPlaying
	}
	s.DrawTextColor(0, 0, line, core.ColorBrightWhite)
	if hud.Status != "" {
		x := s.Width() - len([]rune(hud.Status)) - 1
		s.DrawTextColor(max(x, 0), 0, hud.Status, core.ColorBrightCyan)
	}
}

func (r *Renderer) drawOverlay(s *core.Screen, snap *magictree.Snapshot, summary []string) {
	var lines []string
	color := core.ColorBrightWhite
	switch {
	case snap.Phase == core.PhaseNotStarted:
		lines = []string{"MAGIC TREE", "", "Climb the tree, drop apples on the pests.", "Press Enter to start"}
		color = core.ColorBrightGreen
	case snap.Phase == core.PhaseGameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("Score: %d", snap.Score), "Press Enter to play again"}
		color = core.ColorBrightRed
	case snap.Phase == core.PhaseCleared:
		lines = []string{"YOU CLEARED THE TREE!", fmt.Sprintf("Score: %d", snap.Score), "Press Enter to play again"}
		color = core.ColorBrightYellow
	case snap.Paused:
		lines = []string{"PAUSED", "Press P to resume"}
	default:
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	x := (s.Width() - boxW) / 2
	y := (s.Height() - boxH) / 2
	s.FillRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	s.DrawBox(x, y, boxW, boxH)
	for i, l := range lines {
		lx := x + (boxW-len([]rune(l)))/2
		s.DrawTextColor(lx, y+1+i, l, color)
	}

	if !snap.Phase.Finished() {
		return
	}
	for i, l := range summary {
		lx := (s.Width() - len([]rune(l))) / 2
		s.DrawTextColor(max(lx, 0), y+boxH+1+i, l, core.ColorGray)
	}
}
