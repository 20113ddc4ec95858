package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Cue is a one-shot event a host may turn into sound.
type Cue int

const (
	CueJump Cue = iota
	CueScore
	CueHit
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueScore:
		return "score"
	case CueHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Sprite is one entry of the draw list: a sheet region drawn at a world rect.
type Sprite struct {
	ID  assets.SpriteID
	Src assets.Region
	Dst core.Rect
}

// ScoreHint tells the host where to print the score, centred on (X, Y).
type ScoreHint struct {
	Visible bool
	X, Y    int
}

// Frame is everything a host needs to present one tick.
// Sprites are in back-to-front order.
type Frame struct {
	Tick      int
	Mode      Mode
	Score     int
	ScoreHint ScoreHint
	Sprites   []Sprite
	Cues      []Cue
	Quit      bool
}

// layout holds the overlay anchor points.
type layout struct {
	titleX, titleY   int
	buttonX, buttonY int
	hintX, hintY     int
}

func screenLayout(cfg config.FlappyConfig) layout {
	w, h := cfg.Screen.Width, cfg.Screen.Height
	return layout{
		titleX:  w / 2,
		titleY:  h / 4,
		buttonX: w / 2,
		buttonY: h - h/3,
		hintX:   w / 2,
		hintY:   h / 2,
	}
}

// layoutControls places the clickable buttons where Frame draws them.
func layoutControls(cfg config.FlappyConfig, atlas *assets.Atlas) Controls {
	l := screenLayout(cfg)
	start := atlas.Region(assets.SpriteStartButton)
	ok := atlas.Region(assets.SpriteOKButton)
	return Controls{
		Start:   core.RectFromCenter(l.buttonX, l.buttonY, start.W, start.H),
		Restart: core.RectFromCenter(l.buttonX, l.buttonY, ok.W, ok.H),
	}
}

// Frame builds the draw list for the current state without advancing it.
func (m *Machine) Frame() Frame {
	f := Frame{
		Tick:  m.ticks,
		Mode:  m.mode,
		Score: m.score,
		Quit:  m.quit,
	}
	if len(m.cues) > 0 {
		f.Cues = append([]Cue(nil), m.cues...)
	}

	w, h := m.cfg.Screen.Width, m.cfg.Screen.Height
	l := screenLayout(m.cfg)
	sprites := make([]Sprite, 0, 8+len(m.pipes)+m.ground.Len())

	sprites = append(sprites, m.sprite(assets.SpriteBackground, core.NewRect(0, 0, w, h)))

	if m.mode == ModePlaying || m.mode == ModeGameOver {
		for _, p := range m.pipes {
			sprites = append(sprites, m.sprite(p.SpriteID(), p.Rect))
		}
	}

	for _, t := range m.ground.tiles {
		sprites = append(sprites, m.sprite(assets.SpriteFloor, t.Rect))
	}

	if m.mode != ModeIntro {
		frame := assets.BirdFrames[m.avatar.Frame()%len(assets.BirdFrames)]
		sprites = append(sprites, m.sprite(frame, m.avatar.Rect()))
	}

	switch m.mode {
	case ModeIntro:
		sprites = append(sprites,
			m.centred(assets.SpriteTitle, l.titleX, l.titleY),
			m.sprite(assets.SpriteStartButton, m.controls.Start),
		)
	case ModeInstructions:
		sprites = append(sprites,
			m.centred(assets.SpriteGetReady, l.titleX, l.titleY),
			m.centred(assets.SpriteInstructions, l.hintX, l.hintY),
		)
	case ModePlaying:
		f.ScoreHint = ScoreHint{Visible: true, X: w / 2, Y: h / 8}
	case ModeGameOver:
		sprites = append(sprites,
			m.centred(assets.SpriteGameOver, l.titleX, l.titleY),
			m.sprite(assets.SpriteOKButton, m.controls.Restart),
		)
		f.ScoreHint = ScoreHint{Visible: true, X: l.hintX, Y: l.hintY}
	}

	f.Sprites = sprites
	return f
}

func (m *Machine) sprite(id assets.SpriteID, dst core.Rect) Sprite {
	return Sprite{ID: id, Src: m.atlas.Region(id), Dst: dst}
}

func (m *Machine) centred(id assets.SpriteID, cx, cy int) Sprite {
	src := m.atlas.Region(id)
	return Sprite{ID: id, Src: src, Dst: core.RectFromCenter(cx, cy, src.W, src.H)}
}
