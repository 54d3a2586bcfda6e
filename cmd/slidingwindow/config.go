package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	slidingwindow "github.com/jonoton/go-slidingwindow"
)

// Backends accepted in the config file and on the command line.
const (
	BackendVector  = "vector"
	BackendArray   = "array"
	BackendGeneric = "generic"
)

// Config describes the window the CLI builds.
type Config struct {
	Backend    string `yaml:"backend"`
	Size       int    `yaml:"size"`
	Multiplier int    `yaml:"multiplier"`
	Capacity   int    `yaml:"capacity"`
	Name       string `yaml:"name"`
	// Every prints a row after every N pushes once the window is filled.
	Every int `yaml:"every"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Backend:    BackendVector,
		Size:       4,
		Multiplier: 4,
		Capacity:   16,
		Name:       "cli",
		Every:      1,
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations that would fail or panic at construction.
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: size %d must be at least 1", slidingwindow.ErrInvalidConfig, c.Size)
	}
	if c.Every < 1 {
		return fmt.Errorf("%w: every %d must be at least 1", slidingwindow.ErrInvalidConfig, c.Every)
	}

	switch c.Backend {
	case BackendVector:
		if c.Multiplier < 1 {
			return fmt.Errorf("%w: multiplier %d must be at least 1", slidingwindow.ErrInvalidConfig, c.Multiplier)
		}
	case BackendArray:
		if c.Capacity <= c.Size {
			return fmt.Errorf("%w: capacity %d must be greater than size %d", slidingwindow.ErrInvalidConfig, c.Capacity, c.Size)
		}
	case BackendGeneric:
		if _, ok := genericBuilders[c.Capacity]; !ok {
			return fmt.Errorf("%w: capacity %d has no length token, use a power of two from 4 to 1024", slidingwindow.ErrInvalidConfig, c.Capacity)
		}
		if c.Capacity <= c.Size {
			return fmt.Errorf("%w: capacity %d must be greater than size %d", slidingwindow.ErrInvalidConfig, c.Capacity, c.Size)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", slidingwindow.ErrInvalidConfig, c.Backend)
	}
	return nil
}

type windowBuilder func(size int, opts ...slidingwindow.Option) (*slidingwindow.Window[float64], error)

var genericBuilders = map[int]windowBuilder{
	4:    slidingwindow.NewWithGenericArrayStorage[float64, slidingwindow.L4],
	8:    slidingwindow.NewWithGenericArrayStorage[float64, slidingwindow.L8],
	16:   slidingwindow.NewWithGenericArrayStorage[float64, slidingwindow.L16],
	32:   slidingwindow.NewWithGenericArrayStorage[float64, slidingwindow.L32],
	64:   slidingwindow.NewWithGenericArrayStorage[float64, slidingwindow.L64],
	128:  slidingwindow.NewWithGenericArrayStorage[float64, slidingwindow.L128],
	256:  slidingwindow.NewWithGenericArrayStorage[float64, slidingwindow.L256],
	512:  slidingwindow.NewWithGenericArrayStorage[float64, slidingwindow.L512],
	1024: slidingwindow.NewWithGenericArrayStorage[float64, slidingwindow.L1024],
}

// newWindow validates cfg and builds an instrumented float64 window.
func newWindow(cfg Config, reg prometheus.Registerer, logger logrus.FieldLogger) (*slidingwindow.Window[float64], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []slidingwindow.Option{
		slidingwindow.WithName(cfg.Name),
		slidingwindow.WithMetrics(reg),
		slidingwindow.WithLogger(logger),
	}

	switch cfg.Backend {
	case BackendArray:
		return slidingwindow.NewWithArrayStorage(cfg.Size, make([]float64, cfg.Capacity), opts...)
	case BackendGeneric:
		return genericBuilders[cfg.Capacity](cfg.Size, opts...)
	default:
		return slidingwindow.NewWithVectorStorage[float64](cfg.Size, cfg.Multiplier, opts...)
	}
}
