// Package assets describes the sprite sheet shared by every drawable entity.
// The atlas is loaded once at start-up, validated, and then only read: the
// simulation refers to sprites by SpriteID and the host resolves regions and
// terminal glyphs from the same table.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Sentinel errors for atlas validation.
var (
	ErrMissingSprite     = errors.New("missing sprite")
	ErrRegionOutOfBounds = errors.New("region out of bounds")
)

//go:embed defaults/atlas.yaml
var defaultAtlasYAML []byte

// SpriteID is the logical name of a region in the sheet.
type SpriteID string

// Sprites referenced by the simulation.
const (
	SpriteBackground   SpriteID = "background"
	SpriteFloor        SpriteID = "floor"
	SpritePipeTop      SpriteID = "pipe-top"
	SpritePipeBottom   SpriteID = "pipe-bottom"
	SpriteBird0        SpriteID = "bird-0"
	SpriteBird1        SpriteID = "bird-1"
	SpriteBird2        SpriteID = "bird-2"
	SpriteTitle        SpriteID = "title"
	SpriteStartButton  SpriteID = "start-button"
	SpriteGetReady     SpriteID = "get-ready"
	SpriteInstructions SpriteID = "instructions"
	SpriteGameOver     SpriteID = "game-over"
	SpriteOKButton     SpriteID = "ok-button"
)

// BirdFrames lists the avatar animation frames in order.
var BirdFrames = []SpriteID{SpriteBird0, SpriteBird1, SpriteBird2}

// Required lists every sprite the game draws.
var Required = []SpriteID{
	SpriteBackground, SpriteFloor, SpritePipeTop, SpritePipeBottom,
	SpriteBird0, SpriteBird1, SpriteBird2,
	SpriteTitle, SpriteStartButton, SpriteGetReady, SpriteInstructions,
	SpriteGameOver, SpriteOKButton,
}

// Region is a rectangle of the texture sheet.
type Region struct {
	X, Y, W, H int
}

// Sprite is one atlas entry.
type Sprite struct {
	ID     SpriteID
	Region Region
	Glyph  rune
	Color  core.Color
}

// Atlas is the immutable sprite lookup table.
type Atlas struct {
	image   string
	width   int
	height  int
	sprites map[SpriteID]Sprite
}

// atlasFile mirrors the YAML descriptor.
type atlasFile struct {
	Image   string                `yaml:"image"`
	Width   int                   `yaml:"width"`
	Height  int                   `yaml:"height"`
	Sprites map[string]spriteFile `yaml:"sprites"`
}

type spriteFile struct {
	Region []int  `yaml:"region"`
	Glyph  string `yaml:"glyph"`
	Color  string `yaml:"color"`
}

// Load reads an atlas descriptor from path, or the embedded default when
// path is empty. Any problem is returned; callers are expected to stop
// before the game loop starts.
func Load(path string) (*Atlas, error) {
	if path == "" {
		return Parse(defaultAtlasYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read atlas %s: %w", path, err)
	}
	a, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return a, nil
}

// Default returns the embedded atlas. It panics if the embedded descriptor
// is broken, which is a build defect rather than a runtime condition.
func Default() *Atlas {
	a, err := Parse(defaultAtlasYAML)
	if err != nil {
		panic(err)
	}
	return a
}

// Parse decodes and validates an atlas descriptor.
func Parse(data []byte) (*Atlas, error) {
	var f atlasFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("assets: cannot parse atlas: %w", err)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("assets: sheet size must be positive, got %dx%d", f.Width, f.Height)
	}

	a := &Atlas{
		image:   f.Image,
		width:   f.Width,
		height:  f.Height,
		sprites: make(map[SpriteID]Sprite, len(f.Sprites)),
	}

	for name, sf := range f.Sprites {
		s, err := a.decodeSprite(SpriteID(name), sf)
		if err != nil {
			return nil, err
		}
		a.sprites[s.ID] = s
	}

	for _, id := range Required {
		if _, ok := a.sprites[id]; !ok {
			return nil, fmt.Errorf("assets: %w: %q", ErrMissingSprite, id)
		}
	}

	return a, nil
}

func (a *Atlas) decodeSprite(id SpriteID, sf spriteFile) (Sprite, error) {
	if len(sf.Region) != 4 {
		return Sprite{}, fmt.Errorf("assets: sprite %q: region needs [x, y, w, h], got %v", id, sf.Region)
	}
	r := Region{X: sf.Region[0], Y: sf.Region[1], W: sf.Region[2], H: sf.Region[3]}
	if r.W <= 0 || r.H <= 0 || r.X < 0 || r.Y < 0 || r.X+r.W > a.width || r.Y+r.H > a.height {
		return Sprite{}, fmt.Errorf("assets: sprite %q: %w: %v in %dx%d sheet", id, ErrRegionOutOfBounds, r, a.width, a.height)
	}

	glyph := '█'
	if sf.Glyph != "" {
		if utf8.RuneCountInString(sf.Glyph) != 1 {
			return Sprite{}, fmt.Errorf("assets: sprite %q: glyph must be a single character, got %q", id, sf.Glyph)
		}
		glyph, _ = utf8.DecodeRuneInString(sf.Glyph)
	}

	color, ok := core.ParseColor(sf.Color)
	if !ok {
		return Sprite{}, fmt.Errorf("assets: sprite %q: unknown color %q", id, sf.Color)
	}

	return Sprite{ID: id, Region: r, Glyph: glyph, Color: color}, nil
}

// Image returns the texture sheet file name.
func (a *Atlas) Image() string {
	return a.image
}

// Lookup returns the sprite registered under id.
func (a *Atlas) Lookup(id SpriteID) (Sprite, bool) {
	s, ok := a.sprites[id]
	return s, ok
}

// Region returns the sheet region of id, or a zero Region if it is unknown.
// Validated atlases always contain the Required sprites.
func (a *Atlas) Region(id SpriteID) Region {
	return a.sprites[id].Region
}

// IDs returns all sprite IDs in sorted order.
func (a *Atlas) IDs() []SpriteID {
	ids := make([]SpriteID, 0, len(a.sprites))
	for id := range a.sprites {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
