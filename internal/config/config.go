package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/paperplane/internal/flight"
	"github.com/san-kum/paperplane/internal/render"
)

const (
	DefaultAddr    = ":8501"
	DefaultDataDir = ".paperplane"
	DefaultFPS     = render.DefaultFPS
	DefaultWidth   = render.DefaultWidth
	DefaultHeight  = render.DefaultHeight
	DefaultXMax    = render.DefaultXMax
)

var (
	ErrInvalidFPS  = errors.New("config: fps must be positive")
	ErrInvalidSize = errors.New("config: image width and height must be positive")
	ErrInvalidXMax = errors.New("config: x_max must be positive")
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Animation AnimationConfig `yaml:"animation"`
	Seed      int64           `yaml:"seed"`
	DataDir   string          `yaml:"data_dir"`
	Plane     flight.Plane    `yaml:"plane"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type AnimationConfig struct {
	FPS    int     `yaml:"fps"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	XMax   float64 `yaml:"x_max"`
	Trail  bool    `yaml:"trail"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: DefaultAddr},
		Animation: AnimationConfig{
			FPS:    DefaultFPS,
			Width:  DefaultWidth,
			Height: DefaultHeight,
			XMax:   DefaultXMax,
		},
		DataDir: DefaultDataDir,
		Plane:   flight.DefaultPlane(),
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

// Validate checks the animation settings and canonicalises the plane.
func (c *Config) Validate() error {
	if c.Animation.FPS <= 0 {
		return ErrInvalidFPS
	}
	if c.Animation.Width <= 0 || c.Animation.Height <= 0 {
		return ErrInvalidSize
	}
	if c.Animation.XMax <= 0 {
		return ErrInvalidXMax
	}
	p, err := c.Plane.Normalize()
	if err != nil {
		return err
	}
	c.Plane = p
	return nil
}

// Renderer builds a renderer for the configured animation.
func (c *Config) Renderer() *render.Renderer {
	r := render.NewRenderer(c.Animation.Width, c.Animation.Height, c.Animation.XMax)
	r.Trail = c.Animation.Trail
	return r
}
