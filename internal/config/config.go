package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mandelview/internal/viewport"
)

const (
	DefaultIterStep = 10
	DefaultPalette  = "electric"
	DefaultSampling = "halfblock"
	DefaultColoring = "ramp"
)

// Config is the startup view plus presentation settings. Every field is
// optional in the YAML file; unset fields keep their defaults.
type Config struct {
	Center   CenterConfig `yaml:"center"`
	Scale    float64      `yaml:"scale"`
	MaxIter  int          `yaml:"max_iterations"`
	IterStep int          `yaml:"iteration_step"`
	Palette  string       `yaml:"palette"`
	Sampling string       `yaml:"sampling"` // halfblock or ascii
	Coloring string       `yaml:"coloring"` // ramp or histogram
}

type CenterConfig struct {
	Real float64 `yaml:"real"`
	Imag float64 `yaml:"imag"`
}

func DefaultConfig() *Config {
	return &Config{
		Center:   CenterConfig{Real: viewport.DefaultCenterRe, Imag: viewport.DefaultCenterIm},
		Scale:    viewport.DefaultScale,
		MaxIter:  viewport.DefaultMaxIter,
		IterStep: DefaultIterStep,
		Palette:  DefaultPalette,
		Sampling: DefaultSampling,
		Coloring: DefaultColoring,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
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

// Camera builds a camera from the config, clamping out-of-range values the
// same way the interactive commands do.
func (c *Config) Camera() viewport.Camera {
	cam := viewport.New()
	cam.Center = complex(c.Center.Real, c.Center.Imag)
	if c.Scale > 0 {
		cam.Scale = c.Scale
	}
	if cam.Scale < viewport.MinScale {
		cam.Scale = viewport.MinScale
	}
	if cam.Scale > viewport.MaxScale {
		cam.Scale = viewport.MaxScale
	}
	if c.MaxIter != 0 {
		cam.MaxIter = c.MaxIter
	}
	if cam.MaxIter < viewport.MinIterations {
		cam.MaxIter = viewport.MinIterations
	}
	if cam.MaxIter > viewport.MaxIterations {
		cam.MaxIter = viewport.MaxIterations
	}
	return cam
}
