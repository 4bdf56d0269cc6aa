package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"cheesefield/internal/camera"
	"cheesefield/internal/input"
	"cheesefield/internal/logger"
	"cheesefield/internal/player"
	"cheesefield/internal/world"

	"gopkg.in/yaml.v3"
)

// EnvLogLevel overrides logging.level when set.
const EnvLogLevel = "CHEESEFIELD_LOG_LEVEL"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

const (
	TimeStepFrame = "frame"
	TimeStepDelta = "delta"
)

// MaxFrameScale caps how many reference ticks one delta-mode frame may
// advance.
const MaxFrameScale = 4

// MaxBladesPerClump is the largest clump one instanced draw can hold.
const MaxBladesPerClump = 65536

type Config struct {
	Window       WindowConfig      `yaml:"window"`
	Simulation   SimulationConfig  `yaml:"simulation"`
	Player       player.Config     `yaml:"player"`
	Camera       camera.Config     `yaml:"camera"`
	Collectibles world.FieldConfig `yaml:"collectibles"`
	Grass        world.GrassConfig `yaml:"grass"`
	Render       RenderConfig      `yaml:"render"`
	Input        input.Config      `yaml:"input"`
	Logging      logger.Config     `yaml:"logging"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Resizable bool   `yaml:"resizable"`
	VSync     bool   `yaml:"vsync"`
}

type SimulationConfig struct {
	Seed         int64   `yaml:"seed"`      // 0 picks a seed from the clock
	TimeStep     string  `yaml:"time_step"` // frame or delta
	ReferenceFPS float32 `yaml:"reference_fps"`
}

// Scale returns the per-tick multiplier for a frame that took dt seconds.
// Frame mode moves a fixed amount per frame regardless of dt. Delta mode
// is clamped to [0, MaxFrameScale].
func (s SimulationConfig) Scale(dt float32) float32 {
	if s.TimeStep != TimeStepDelta {
		return 1
	}
	return max(0, min(dt*s.ReferenceFPS, MaxFrameScale))
}

type RenderConfig struct {
	GroundSize       float32 `yaml:"ground_size"`
	DrawDistance     float32 `yaml:"draw_distance"` // grass only, 0 disables
	SkyColor         string  `yaml:"sky_color"`
	GroundColor      string  `yaml:"ground_color"`
	PlayerColor      string  `yaml:"player_color"`
	CollectibleColor string  `yaml:"collectible_color"`
	GrassColor       string  `yaml:"grass_color"`
	BladeRadius      float32 `yaml:"blade_radius"`
	BladeHeight      float32 `yaml:"blade_height"`
	BladeSlices      int     `yaml:"blade_slices"`
	ShowFPS          bool    `yaml:"show_fps"`
}

// Default returns the stock game.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Cheese Field",
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
			Resizable: true,
			VSync:     true,
		},
		Simulation: SimulationConfig{
			TimeStep:     TimeStepFrame,
			ReferenceFPS: 60,
		},
		Player:       player.DefaultConfig(),
		Camera:       camera.DefaultConfig(),
		Collectibles: world.DefaultFieldConfig(),
		Grass:        world.DefaultGrassConfig(),
		Render: RenderConfig{
			GroundSize:       5000,
			DrawDistance:     150,
			SkyColor:         "#87CEEB",
			GroundColor:      "#228B22",
			PlayerColor:      "#808080",
			CollectibleColor: "#FFFF00",
			GrassColor:       "#00FF00",
			BladeRadius:      0.05,
			BladeHeight:      0.5,
			BladeSlices:      3,
		},
		Input:   input.DefaultConfig(),
		Logging: logger.DefaultConfig(),
	}
}

// Load reads the YAML file at path over the defaults. An empty path skips
// the file. Key bindings in the file replace the default set.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}

		defaults := cfg.Input.Bindings
		cfg.Input.Bindings = nil
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if cfg.Input.Bindings == nil {
			cfg.Input.Bindings = defaults
		}
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TargetFPS < 0:
		return fmt.Errorf("%w: target_fps %d", ErrInvalid, c.Window.TargetFPS)
	case c.Simulation.TimeStep != TimeStepFrame && c.Simulation.TimeStep != TimeStepDelta:
		return fmt.Errorf("%w: time_step %q, want %q or %q", ErrInvalid, c.Simulation.TimeStep, TimeStepFrame, TimeStepDelta)
	case c.Simulation.TimeStep == TimeStepDelta && c.Simulation.ReferenceFPS <= 0:
		return fmt.Errorf("%w: reference_fps must be positive in delta mode", ErrInvalid)
	case c.Player.Gravity <= 0:
		return fmt.Errorf("%w: player gravity must be positive", ErrInvalid)
	case c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1:
		return fmt.Errorf("%w: camera smoothing %v, want (0, 1]", ErrInvalid, c.Camera.Smoothing)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera clip planes %v..%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Collectibles.Count < 0:
		return fmt.Errorf("%w: collectible count %d", ErrInvalid, c.Collectibles.Count)
	case c.Collectibles.Range <= 0:
		return fmt.Errorf("%w: collectible range %v", ErrInvalid, c.Collectibles.Range)
	case c.Grass.Clumps < 0 || c.Grass.BladesPerClump < 0:
		return fmt.Errorf("%w: grass %d clumps of %d blades", ErrInvalid, c.Grass.Clumps, c.Grass.BladesPerClump)
	case c.Grass.BladesPerClump > MaxBladesPerClump:
		return fmt.Errorf("%w: blades_per_clump %d, max %d", ErrInvalid, c.Grass.BladesPerClump, MaxBladesPerClump)
	case c.Grass.MinScale > c.Grass.MaxScale:
		return fmt.Errorf("%w: grass scale %v > %v", ErrInvalid, c.Grass.MinScale, c.Grass.MaxScale)
	case c.Render.BladeSlices < 3:
		return fmt.Errorf("%w: blade_slices %d, need at least 3", ErrInvalid, c.Render.BladeSlices)
	}

	colors := map[string]string{
		"sky_color":         c.Render.SkyColor,
		"ground_color":      c.Render.GroundColor,
		"player_color":      c.Render.PlayerColor,
		"collectible_color": c.Render.CollectibleColor,
		"grass_color":       c.Render.GrassColor,
	}
	for name, value := range colors {
		if _, err := ParseHexColor(value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
		}
	}

	if _, err := input.NewBindings(c.Input); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
