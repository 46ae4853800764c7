package constants

import "math"

// Field of View
const (
	// FOVDefault is 60 degrees
	FOVDefault = math.Pi / 3.0

	// FOVMin is the narrowest selectable field of view (40 degrees)
	FOVMin = 40.0 * math.Pi / 180.0

	// FOVMax is the widest selectable field of view (120 degrees)
	FOVMax = 120.0 * math.Pi / 180.0

	// FOVStep is the per-keypress FOV adjustment (5 degrees)
	FOVStep = 5.0 * math.Pi / 180.0
)

// Viewport Limits
const (
	// MinViewWidth and MinViewHeight gate scene rendering; below these the
	// renderers print a "terminal too small" message instead of a scene
	MinViewWidth  = 24
	MinViewHeight = 8
)

// Shading Ramps (ASCII fallback when Unicode is unavailable)
const (
	// ASCIIWallShades orders wall glyphs near to far
	ASCIIWallShades = "@%#*+=-:."

	// ASCIIFloorShades orders floor glyphs near to far
	ASCIIFloorShades = ".,-~:;=!*#$@"

	// UnicodeFloorChars orders floor glyphs near to far for UTF-8 terminals
	UnicodeFloorChars = "·⋅∘°ˑ"
)
