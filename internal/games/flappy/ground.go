package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// minGroundTiles is the number of tiles that must stay live for the floor
// to scroll without a visible seam.
const minGroundTiles = 2

// GroundTile is one segment of the scrolling floor.
type GroundTile struct {
	Rect  core.Rect
	Speed int
}

// Bounds implements Collider.
func (t GroundTile) Bounds() core.Rect {
	return t.Rect
}

// Advance scrolls the tile left by one tick.
func (t *GroundTile) Advance() {
	t.Rect.X -= t.Speed
}

// Expired reports whether the tile has fully left the screen.
func (t GroundTile) Expired() bool {
	return t.Rect.Right() < 0
}

// Ground owns the ordered floor tiles.
type Ground struct {
	tiles   []GroundTile
	screenW int
	originY int
	tileW   int
	tileH   int
	speed   int
}

// NewGround lays the first tile at the left screen edge and fills the rest.
func NewGround(cfg config.FlappyConfig) *Ground {
	g := &Ground{
		tiles:   make([]GroundTile, 0, 4),
		screenW: cfg.Screen.Width,
		originY: cfg.Floor.OriginY,
		tileW:   cfg.Floor.TileWidth,
		tileH:   cfg.Floor.Height,
		speed:   cfg.Physics.BoardSpeed,
	}
	g.appendAt(0)
	g.Replenish()
	return g
}

// Tiles returns a copy of the live tiles, leftmost first.
func (g *Ground) Tiles() []GroundTile {
	out := make([]GroundTile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Len returns the number of live tiles.
func (g *Ground) Len() int {
	return len(g.tiles)
}

// Advance scrolls all tiles and retires the ones off-screen.
// Returns the number retired.
func (g *Ground) Advance() int {
	var retired int
	g.tiles, retired = advanceAll(g.tiles)
	return retired
}

// Replenish appends tiles flush against the rightmost one (or at the right
// screen edge when none remain) until at least two are live and the floor
// reaches the right edge. Returns the number added.
func (g *Ground) Replenish() int {
	added := 0
	for len(g.tiles) < minGroundTiles || g.tiles[len(g.tiles)-1].Rect.Right() < g.screenW {
		x := g.screenW
		if n := len(g.tiles); n > 0 {
			x = g.tiles[n-1].Rect.Right()
		}
		g.appendAt(x)
		added++
	}
	return added
}

func (g *Ground) appendAt(x int) {
	g.tiles = append(g.tiles, GroundTile{
		Rect:  core.NewRect(x, g.originY, g.tileW, g.tileH),
		Speed: g.speed,
	})
}
