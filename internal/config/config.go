package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/san-kum/beadsim/internal/beads"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm = "bead"
	DefaultFPS       = 20
	DefaultDataDir   = ".beadsim"
	DefaultTheme     = "neon"

	MaxFPS = 120
)

// Themes known to the terminal player.
var Themes = []string{"neon", "mono", "amber"}

var (
	ErrFPSBounds    = errors.New("config: fps out of range (1-120)")
	ErrUnknownTheme = errors.New("config: unknown theme")
)

type Config struct {
	Algorithm string `yaml:"algorithm"`
	Values    []int  `yaml:"values"`
	FPS       int    `yaml:"fps"`
	DataDir   string `yaml:"data_dir"`
	Theme     string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		FPS:       DefaultFPS,
		DataDir:   DefaultDataDir,
		Theme:     DefaultTheme,
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

func (c *Config) Validate() error {
	if err := beads.Validate(c.Values); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.FPS < 1 || c.FPS > MaxFPS {
		return fmt.Errorf("%w: %d", ErrFPSBounds, c.FPS)
	}
	if !slices.Contains(Themes, c.Theme) {
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownTheme, c.Theme, Themes)
	}
	return nil
}

// ParseValues reads integers separated by commas and/or whitespace.
func ParseValues(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, beads.ErrInvalidInput)
		}
		values = append(values, v)
	}
	return values, nil
}
