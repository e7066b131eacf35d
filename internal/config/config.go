package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBodies       = 1
	DefaultMaxPoints    = 5000
	DefaultGravConst    = 1.0
	DefaultResolvedMass = 1.0
	DefaultMedianBox    = 101
	DefaultPlotWidth    = 72
	DefaultPlotHeight   = 10

	// DefaultAngleScale converts radians to degrees.
	DefaultAngleScale = 180.0 / math.Pi
)

// Precession reference frames.
const (
	FrameXY    = "xy"
	FrameTotal = "total"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	FileRoot        string         `yaml:"file_root"`
	NumBodies       int            `yaml:"num_bodies"`
	MaxPoints       int            `yaml:"max_points"`
	GravConst       float64        `yaml:"grav_const"`
	ResolvedMass    float64        `yaml:"resolved_mass"`
	AngleScale      float64        `yaml:"angle_scale"`
	TrackAxes       bool           `yaml:"track_axes"`
	PrecessionFrame string         `yaml:"precession_frame"`
	Plot            PlotConfig     `yaml:"plot"`
	Spectral        SpectralConfig `yaml:"spectral"`
}

type PlotConfig struct {
	TMin    float64  `yaml:"tmin"`
	TMax    float64  `yaml:"tmax"` // 0 means the end of the run
	ResJ    int      `yaml:"res_j"`
	ResDJ   int      `yaml:"res_dj"`
	Palette []string `yaml:"palette"`
	Theme   string   `yaml:"theme"`
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
}

type SpectralConfig struct {
	MedianBox int `yaml:"median_box"`
}

func DefaultPalette() []string {
	return []string{"blue", "red", "green", "magenta", "cyan", "yellow", "orange", "purple"}
}

func DefaultConfig() *Config {
	return &Config{
		NumBodies:       DefaultBodies,
		MaxPoints:       DefaultMaxPoints,
		GravConst:       DefaultGravConst,
		ResolvedMass:    DefaultResolvedMass,
		AngleScale:      DefaultAngleScale,
		PrecessionFrame: FrameXY,
		Plot: PlotConfig{
			ResJ:    2,
			ResDJ:   1,
			Palette: DefaultPalette(),
			Theme:   "minimal",
			Width:   DefaultPlotWidth,
			Height:  DefaultPlotHeight,
		},
		Spectral: SpectralConfig{MedianBox: DefaultMedianBox},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.NumBodies < 1:
		return fmt.Errorf("%w: num_bodies %d, need at least the central mass", ErrInvalid, c.NumBodies)
	case c.MaxPoints < 1:
		return fmt.Errorf("%w: max_points %d", ErrInvalid, c.MaxPoints)
	case c.PrecessionFrame != FrameXY && c.PrecessionFrame != FrameTotal:
		return fmt.Errorf("%w: precession_frame %q", ErrInvalid, c.PrecessionFrame)
	case c.Spectral.MedianBox < 1 || c.Spectral.MedianBox%2 == 0:
		return fmt.Errorf("%w: median_box %d must be odd", ErrInvalid, c.Spectral.MedianBox)
	case c.Plot.TMax != 0 && c.Plot.TMax < c.Plot.TMin:
		return fmt.Errorf("%w: tmax %g before tmin %g", ErrInvalid, c.Plot.TMax, c.Plot.TMin)
	}
	return nil
}
