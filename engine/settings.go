package engine

import (
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/maze3d/constants"
)

// Game modes
const (
	ModeDefault     = "default"
	ModeFree        = "free"
	ModeDemoDefault = "demo_default"
	ModeDemoFree    = "demo_free"
)

// Tri-state capability overrides
const (
	TriAuto = "auto"
	TriOn   = "on"
	TriOff  = "off"
)

// HUD visibility modes
const (
	HUDAuto = "auto5"
	HUDOn   = "on"
	HUDOff  = "off"
)

// Settings is the persisted user configuration
type Settings struct {
	Difficulty int     `yaml:"difficulty"`
	Mode       string  `yaml:"mode"`
	Render     string  `yaml:"render"`
	Shadows    bool    `yaml:"shadows"`
	Colors     string  `yaml:"colors"`
	Unicode    string  `yaml:"unicode"`
	Mouse      bool    `yaml:"mouse"`
	MouseSens  float64 `yaml:"mouse_sens"`
	HUD        string  `yaml:"hud"`
	FOVDegrees int     `yaml:"fov_degrees"`
	Language   string  `yaml:"language"`
}

// DefaultSettings returns the out-of-box configuration
func DefaultSettings() Settings {
	return Settings{
		Difficulty: 10,
		Mode:       ModeDefault,
		Render:     "auto",
		Shadows:    true,
		Colors:     TriAuto,
		Unicode:    TriAuto,
		Mouse:      true,
		MouseSens:  constants.MouseSensDefault,
		HUD:        HUDAuto,
		FOVDegrees: 60,
		Language:   LangEN,
	}
}

// Normalize clamps every field to its valid range, substituting defaults
// for unknown enum values. Hand-edited settings files go through here.
func (s *Settings) Normalize() {
	s.Difficulty = min(max(s.Difficulty, 1), 100)

	switch s.Mode {
	case ModeDefault, ModeFree, ModeDemoDefault, ModeDemoFree:
	default:
		s.Mode = ModeDefault
	}

	switch s.Render {
	case "auto", "text", "half", "braille":
	default:
		s.Render = "auto"
	}

	switch s.Colors {
	case TriAuto, TriOn, TriOff:
	default:
		s.Colors = TriAuto
	}

	switch s.Unicode {
	case TriAuto, TriOn, TriOff:
	default:
		s.Unicode = TriAuto
	}

	switch s.HUD {
	case HUDAuto, HUDOn, HUDOff:
	default:
		s.HUD = HUDAuto
	}

	// Snap to the 5 degree grid within [40, 120]
	s.FOVDegrees = min(max(s.FOVDegrees, 40), 120)
	s.FOVDegrees = s.FOVDegrees / 5 * 5

	if s.MouseSens <= 0 || s.MouseSens > 0.2 {
		s.MouseSens = constants.MouseSensDefault
	}

	switch s.Language {
	case LangEN, LangRU:
	default:
		s.Language = LangEN
	}
}

// FOV returns the configured field of view in radians
func (s Settings) FOV() float64 {
	return float64(s.FOVDegrees) * math.Pi / 180.0
}

// Demo reports whether an autopilot drives the player
func (s Settings) Demo() bool {
	return s.Mode == ModeDemoDefault || s.Mode == ModeDemoFree
}

// FreeFlight reports whether vertical movement is enabled
func (s Settings) FreeFlight() bool {
	return s.Mode == ModeFree || s.Mode == ModeDemoFree
}

// SettingsPath returns the per-user settings file location
func SettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "maze3d", "settings.yaml"), nil
}

// LoadSettings reads the settings file, returning defaults when the file is
// missing or malformed. The returned error is informational; the settings
// are always usable.
func LoadSettings() (Settings, error) {
	s := DefaultSettings()

	path, err := SettingsPath()
	if err != nil {
		return s, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		s = DefaultSettings()
		return s, err
	}

	s.Normalize()
	return s, nil
}

// SaveSettings writes the settings file, creating the config directory if
// needed
func SaveSettings(s Settings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
