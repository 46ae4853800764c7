// Package render turns a maze grid plus a camera pose into a terminal frame.
// Three rasterizers share one contract and differ only in sub-cell
// resolution: plain glyphs, half-block vertical doubling, and braille 2x4
// sub-pixel packing.
package render

import (
	"github.com/lixenwraith/maze3d/maze"
	"github.com/lixenwraith/maze3d/physics"
)

// Mode selects a rasterizer
type Mode uint8

const (
	ModeAuto Mode = iota
	ModeText
	ModeHalf
	ModeBraille
)

// String returns the settings-file name of the mode
func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeHalf:
		return "half"
	case ModeBraille:
		return "braille"
	default:
		return "auto"
	}
}

// ModeFromString parses a settings-file mode name; unknown names resolve to
// auto
func ModeFromString(s string) Mode {
	switch s {
	case "text":
		return ModeText
	case "half":
		return ModeHalf
	case "braille":
		return ModeBraille
	default:
		return ModeAuto
	}
}

// Config is the per-frame view configuration handed in by the engine
type Config struct {
	FOV      float64 // radians
	Shadows  bool    // false selects the flat styling path
	HUDLines int     // rows at the bottom reserved for the HUD (0 or 2)

	// TooSmallText replaces the scene when the viewport is below the
	// minimum size; localized by the caller
	TooSmallText string
}

// Renderer rasterizes one frame of the scene
type Renderer interface {
	Draw(f *Frame, grid maze.Grid, p physics.Player, cfg Config, style *Style)
}

// Resolve maps a configured mode to the effective one for the terminal:
// auto prefers braille on Unicode terminals, and the sub-cell modes degrade
// to text without Unicode.
func Resolve(mode Mode, style *Style) Mode {
	if mode == ModeAuto {
		if style.UnicodeOK {
			return ModeBraille
		}
		return ModeText
	}
	if (mode == ModeHalf || mode == ModeBraille) && !style.UnicodeOK {
		return ModeText
	}
	return mode
}

// For returns the rasterizer for the resolved render mode
func For(mode Mode, style *Style) Renderer {
	switch Resolve(mode, style) {
	case ModeHalf:
		return &halfBlockRenderer{}
	case ModeBraille:
		return &brailleRenderer{}
	default:
		return &textRenderer{}
	}
}
