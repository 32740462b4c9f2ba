// Package settings loads the viewer configuration from YAML or TOML.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"raycaster/render"
	"raycaster/tilemap"
	"raycaster/world"
)

// ErrInvalid is returned for values outside their allowed range.
var ErrInvalid = errors.New("invalid setting")

// Config holds all viewer configuration.
type Config struct {
	View        View   `yaml:"view" toml:"view"`
	Minimap     Buffer `yaml:"minimap" toml:"minimap"`
	Perspective Buffer `yaml:"perspective" toml:"perspective"`
	Window      Window `yaml:"window" toml:"window"`
	Body        Body   `yaml:"body" toml:"body"`
	Map         Map    `yaml:"map" toml:"map"`
	Log         Log    `yaml:"log" toml:"log"`
}

// View holds the projection parameters. They are the only values picked up
// by live reload.
type View struct {
	FocalLength float64 `yaml:"focal_length" toml:"focal_length"`
	ViewWidth   float64 `yaml:"view_width" toml:"view_width"`
}

// Buffer is the size of a rendered frame in pixels.
type Buffer struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

type Window struct {
	Scale int `yaml:"scale" toml:"scale"` // integer upscale of the perspective view
}

type Body struct {
	Speed        float64 `yaml:"speed" toml:"speed"`
	TurningSpeed float64 `yaml:"turning_speed" toml:"turning_speed"`
	Radius       float64 `yaml:"radius" toml:"radius"`
}

// Map optionally replaces the built-in layout, one string per row.
type Map struct {
	Rows []string `yaml:"rows" toml:"rows"`
}

type Log struct {
	Level string `yaml:"level" toml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	p := render.DefaultParams()
	return Config{
		View:        View{FocalLength: p.FocalLength, ViewWidth: p.ViewWidth},
		Minimap:     Buffer{Width: 100, Height: 100},
		Perspective: Buffer{Width: 200, Height: 200},
		Window:      Window{Scale: 3},
		Body: Body{
			Speed:        world.DefaultSpeed,
			TurningSpeed: world.DefaultTurningSpeed,
			Radius:       world.DefaultRadius,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads the config at path over the defaults. TOML is used for .toml
// files and YAML otherwise. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := decode(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// Validate checks sizes and body parameters. View parameters are clamped
// rather than rejected.
func (c Config) Validate() error {
	buffers := []struct {
		name string
		size Buffer
	}{{"minimap", c.Minimap}, {"perspective", c.Perspective}}
	for _, b := range buffers {
		if b.size.Width <= 0 || b.size.Height <= 0 {
			return fmt.Errorf("%w: %s size %dx%d", ErrInvalid, b.name, b.size.Width, b.size.Height)
		}
	}
	if c.Window.Scale < 1 {
		return fmt.Errorf("%w: window scale %d", ErrInvalid, c.Window.Scale)
	}
	if c.Body.Radius <= 0 || c.Body.Radius >= 1 {
		return fmt.Errorf("%w: body radius %v outside (0, 1)", ErrInvalid, c.Body.Radius)
	}
	if c.Body.Speed < 0 || c.Body.TurningSpeed < 0 {
		return fmt.Errorf("%w: negative body speed", ErrInvalid)
	}
	return nil
}

// Params returns the clamped projection parameters.
func (c Config) Params() render.Params {
	return render.Params{FocalLength: c.View.FocalLength, ViewWidth: c.View.ViewWidth}.Clamped()
}

// TileMap parses the configured layout, or returns the built-in map when no
// rows are set.
func (c Config) TileMap() (*tilemap.Map, error) {
	if len(c.Map.Rows) == 0 {
		return tilemap.Default(), nil
	}
	return tilemap.Parse(c.Map.Rows)
}

// World builds the map and places the body with the configured parameters.
func (c Config) World() (*world.World, error) {
	m, err := c.TileMap()
	if err != nil {
		return nil, err
	}
	return world.New(m,
		world.WithSpeed(c.Body.Speed),
		world.WithTurningSpeed(c.Body.TurningSpeed),
		world.WithRadius(c.Body.Radius),
	)
}

// Renderers returns the minimap and perspective renderers sized from config.
func (c Config) Renderers() (render.TopDown, render.Perspective) {
	return render.TopDown{Width: c.Minimap.Width, Height: c.Minimap.Height},
		render.Perspective{Width: c.Perspective.Width, Height: c.Perspective.Height}
}
