package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fraclab/internal/fractal"
)

const (
	DefaultSize       = 512
	DefaultIterations = 256
	DefaultKernel     = "wide"
	DefaultRegion     = "full"
)

type Config struct {
	Size       int32           `yaml:"size"`
	Iterations int32           `yaml:"iterations"`
	Kernel     string          `yaml:"kernel"`
	Region     string          `yaml:"region"`
	Workers    int             `yaml:"workers"`
	Viewport   *ViewportConfig `yaml:"viewport"`
}

// ViewportConfig is an explicit complex-plane rectangle. When present
// it takes precedence over the named region.
type ViewportConfig struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:       DefaultSize,
		Iterations: DefaultIterations,
		Kernel:     DefaultKernel,
		Region:     DefaultRegion,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
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

// GetRegion resolves the configured viewport: the explicit rectangle
// when set, the named catalogue region otherwise.
func (c *Config) GetRegion() (fractal.Region, error) {
	if c.Viewport != nil {
		return fractal.Region{
			XMin: c.Viewport.XMin,
			XMax: c.Viewport.XMax,
			YMin: c.Viewport.YMin,
			YMax: c.Viewport.YMax,
		}, nil
	}
	name := c.Region
	if name == "" {
		name = DefaultRegion
	}
	return fractal.RegionByName(name)
}
