package runner

import (
	"strings"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Sprite is a small rune bitmap, rows top to bottom. Spaces are transparent.
// It is stretched to whatever cell area the player occupies.
type Sprite []string

// At samples the sprite for cell (cx, cy) of a w×h cell area.
func (s Sprite) At(cx, cy, w, h int) rune {
	if len(s) == 0 || w <= 0 || h <= 0 {
		return ' '
	}
	row := []rune(s[cy*len(s)/h])
	if len(row) == 0 {
		return ' '
	}
	return row[cx*len(row)/w]
}

// Sound is a jump cue. Terminals play it as a number of bell characters.
type Sound struct {
	Name  string
	Bells int
}

// Cue returns the control sequence that plays the sound.
func (s Sound) Cue() string {
	return strings.Repeat("\a", s.Bells)
}

// Skin bundles the sprites and sound swapped by the skin toggle.
// Idle is shown on the ground, Jump while rising and Fall while dropping.
type Skin struct {
	Name  string
	Idle  Sprite
	Jump  Sprite
	Fall  Sprite
	Color core.Color
	Scale float64 // Drawn size relative to the collision box, bottom aligned
	Sound Sound
}

// SpriteFor picks the sprite frame for the player's motion.
func (s Skin) SpriteFor(p Player, ground float64) Sprite {
	if !p.Airborne(ground) {
		return s.Idle
	}
	if p.VY < 0 {
		return s.Jump
	}
	return s.Fall
}

// Skins lists the available skins; index 0 is the default.
var Skins = []Skin{
	{
		Name: "classic",
		Idle: Sprite{
			" ◆█ ",
			"████",
			"╱  ╲",
		},
		Jump: Sprite{
			"╲◆█╱",
			" ██ ",
			" ╱╲ ",
		},
		Fall: Sprite{
			" ◆█ ",
			"╱██╲",
			" ╲╱ ",
		},
		Color: core.ColorYellow,
		Scale: 1,
		Sound: Sound{Name: "blip", Bells: 1},
	},
	{
		Name:  "ghost",
		Idle:  ghostSprite,
		Jump:  ghostSprite,
		Fall:  ghostSprite,
		Color: core.ColorWhite,
		Scale: 1.25,
		Sound: Sound{Name: "double-blip", Bells: 2},
	},
}

var ghostSprite = Sprite{
	"▄██▄",
	"█▀█▀",
	"████",
	"▀ ▀▀",
}
