// Package config loads gridpath settings from layered sources using koanf.
//
// Layers, lowest precedence first:
//
//  1. built-in defaults
//  2. an optional TOML or YAML file (chosen by extension)
//  3. a .env file in the working directory, if present
//  4. GRIDPATH_* environment variables, with "__" separating key levels
//     (GRIDPATH_MAZE__TURN_PENALTY sets maze.turn_penalty)
//
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "GRIDPATH_"

// Methods accepted for maze.method.
const (
	MethodTrace  = "trace"
	MethodFilter = "filter"
)

var (
	// ErrUnknownFormat indicates a config file extension with no parser.
	ErrUnknownFormat = errors.New("config: unsupported config file format")
	// ErrInvalid indicates a loaded value outside its allowed range.
	ErrInvalid = errors.New("config: invalid value")
)

// Maze holds the weighted maze settings.
type Maze struct {
	TurnPenalty int64  `koanf:"turn_penalty"`
	StepCost    int64  `koanf:"step_cost"`
	Method      string `koanf:"method"`
}

// Race holds the race track cheat settings.
type Race struct {
	Duration  int `koanf:"duration"`
	Threshold int `koanf:"threshold"`
}

// Memory holds the falling-bytes settings. Size 0 means infer.
type Memory struct {
	Size  int `koanf:"size"`
	Bytes int `koanf:"bytes"`
}

// Config is the complete gridpath configuration.
type Config struct {
	Maze   Maze   `koanf:"maze"`
	Race   Race   `koanf:"race"`
	Memory Memory `koanf:"memory"`
}

// Defaults returns the built-in configuration layer.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"maze.turn_penalty": 1000,
		"maze.step_cost":    1,
		"maze.method":       MethodTrace,
		"race.duration":     20,
		"race.threshold":    100,
		"memory.size":       0,
		"memory.bytes":      1024,
	}
}

// Load builds the configuration. path may be empty to skip the file layer.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	// 3. .env file
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	// 4. Env vars
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps GRIDPATH_MAZE__TURN_PENALTY to maze.turn_penalty.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Maze.TurnPenalty < 0:
		return fmt.Errorf("%w: maze.turn_penalty %d < 0", ErrInvalid, c.Maze.TurnPenalty)
	case c.Maze.StepCost < 1:
		return fmt.Errorf("%w: maze.step_cost %d < 1", ErrInvalid, c.Maze.StepCost)
	case c.Maze.Method != MethodTrace && c.Maze.Method != MethodFilter:
		return fmt.Errorf("%w: maze.method %q", ErrInvalid, c.Maze.Method)
	case c.Race.Duration < 1:
		return fmt.Errorf("%w: race.duration %d < 1", ErrInvalid, c.Race.Duration)
	case c.Memory.Size < 0:
		return fmt.Errorf("%w: memory.size %d < 0", ErrInvalid, c.Memory.Size)
	case c.Memory.Bytes < 0:
		return fmt.Errorf("%w: memory.bytes %d < 0", ErrInvalid, c.Memory.Bytes)
	}
	return nil
}
