package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestDefaultAtlasHasRequiredSprites(t *testing.T) {
	a := Default()
	for _, id := range Required {
		if _, ok := a.Lookup(id); !ok {
			t.Errorf("default atlas missing %q", id)
		}
	}

	bird := a.Region(SpriteBird0)
	if bird != (Region{X: 3, Y: 491, W: 17, H: 12}) {
		t.Errorf("bird-0 region = %+v", bird)
	}

	pipe, _ := a.Lookup(SpritePipeBottom)
	if pipe.Glyph != '█' || pipe.Color != core.ColorBrightGreen {
		t.Errorf("pipe-bottom glyph/color = %q/%v", pipe.Glyph, pipe.Color)
	}

	if a.Image() != "textures.png" {
		t.Errorf("Image() = %q", a.Image())
	}
	if len(a.IDs()) != len(Required) {
		t.Errorf("IDs() = %v", a.IDs())
	}
}

func TestParseRejectsBrokenAtlas(t *testing.T) {
	valid := string(defaultAtlasYAML)

	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "missing sprite",
			yaml: strings.Replace(valid, "  ok-button:", "  ok-button-renamed:", 1),
			want: ErrMissingSprite,
		},
		{
			name: "region outside sheet",
			yaml: strings.Replace(valid, "[462, 42, 40, 14]", "[500, 42, 40, 14]", 1),
			want: ErrRegionOutOfBounds,
		},
		{
			name: "negative size",
			yaml: strings.Replace(valid, "[462, 42, 40, 14]", "[462, 42, -1, 14]", 1),
			want: ErrRegionOutOfBounds,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, tc.want) {
				t.Errorf("Parse() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestParseRejectsBadFields(t *testing.T) {
	valid := string(defaultAtlasYAML)

	cases := map[string]string{
		"short region": strings.Replace(valid, "[462, 42, 40, 14]", "[462, 42, 40]", 1),
		"long glyph":   strings.Replace(valid, `glyph: "▒"`, `glyph: "ab"`, 1),
		"bad color":    strings.Replace(valid, "color: orange", "color: chartreuse", 1),
		"no sheet":     strings.Replace(valid, "width: 512", "width: 0", 1),
		"not yaml":     "sprites: [",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoad(t *testing.T) {
	a, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if _, ok := a.Lookup(SpriteTitle); !ok {
		t.Error("embedded atlas should contain the title")
	}

	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("missing atlas file must fail")
	}

	path := filepath.Join(dir, "atlas.yaml")
	broken := strings.Replace(string(defaultAtlasYAML), "  title:", "  titel:", 1)
	if err := os.WriteFile(path, []byte(broken), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrMissingSprite) {
		t.Errorf("Load(broken) = %v, expected ErrMissingSprite", err)
	}
}
