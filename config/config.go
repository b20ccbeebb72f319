package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "DEAD_ARENA_"

// Config is the full runtime configuration
type Config struct {
	Arena  ArenaConfig `yaml:"arena"`
	FPS    int         `yaml:"fps"`
	Seed   uint64      `yaml:"seed"` // 0 seeds from the clock
	Audio  AudioConfig `yaml:"audio"`
	Input  InputConfig `yaml:"input"`
	Assets AssetConfig `yaml:"assets"`
	Debug  DebugConfig `yaml:"debug"`
}

type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	EffectVolume float64 `yaml:"effect_volume"`
	MusicVolume  float64 `yaml:"music_volume"`
}

type InputConfig struct {
	// HoldWindow is how long a key counts as held after its last press or repeat
	HoldWindow time.Duration `yaml:"hold_window"`
	// Keys overrides bindings, action name to key name
	Keys map[string]string `yaml:"keys"`
}

type AssetConfig struct {
	Dir string `yaml:"dir"`
}

type DebugConfig struct {
	Log     bool   `yaml:"log"`
	LogDir  string `yaml:"log_dir"`
	Overlay bool   `yaml:"overlay"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{Width: 800, Height: 600},
		FPS:   60,
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.7,
			EffectVolume: 1.0,
			MusicVolume:  0.4,
		},
		Input:  InputConfig{HoldWindow: 300 * time.Millisecond},
		Assets: AssetConfig{Dir: "assets"},
		Debug:  DebugConfig{LogDir: "logs"},
	}
}

// Load layers defaults, the YAML file at path, then environment overrides,
// and validates the result
// An empty path skips the file; envFile names a dotenv file whose values apply
// only where the real environment is unset, an empty envFile means ".env"
// and a missing dotenv file is not an error
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if envFile == "" {
		envFile = ".env"
	}
	dotenv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", envFile, err)
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	floats := []struct {
		name string
		dst  *float64
	}{
		{"ARENA_WIDTH", &c.Arena.Width},
		{"ARENA_HEIGHT", &c.Arena.Height},
		{"MASTER_VOLUME", &c.Audio.MasterVolume},
		{"EFFECT_VOLUME", &c.Audio.EffectVolume},
		{"MUSIC_VOLUME", &c.Audio.MusicVolume},
	}
	for _, f := range floats {
		if v, ok := lookup(EnvPrefix + f.name); ok {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, f.name, err)
			}
			*f.dst = parsed
		}
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{"AUDIO_ENABLED", &c.Audio.Enabled},
		{"DEBUG", &c.Debug.Log},
		{"DEBUG_OVERLAY", &c.Debug.Overlay},
	}
	for _, b := range bools {
		if v, ok := lookup(EnvPrefix + b.name); ok {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, b.name, err)
			}
			*b.dst = parsed
		}
	}

	if v, ok := lookup(EnvPrefix + "FPS"); ok {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sFPS: %w", EnvPrefix, err)
		}
		c.FPS = fps
	}
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvPrefix + "HOLD_WINDOW"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sHOLD_WINDOW: %w", EnvPrefix, err)
		}
		c.Input.HoldWindow = d
	}
	if v, ok := lookup(EnvPrefix + "ASSET_DIR"); ok {
		c.Assets.Dir = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_DIR"); ok {
		c.Debug.LogDir = v
	}
	return nil
}

// Validate checks ranges; the first violation is returned
func (c *Config) Validate() error {
	switch {
	case c.Arena.Width < 400 || c.Arena.Height < 300:
		return fmt.Errorf("arena %vx%v smaller than 400x300", c.Arena.Width, c.Arena.Height)
	case c.FPS < 1 || c.FPS > 240:
		return fmt.Errorf("fps %d outside [1, 240]", c.FPS)
	case !unit(c.Audio.MasterVolume) || !unit(c.Audio.EffectVolume) || !unit(c.Audio.MusicVolume):
		return fmt.Errorf("audio volumes must be within [0, 1]")
	case c.Input.HoldWindow <= 0 || c.Input.HoldWindow > 2*time.Second:
		return fmt.Errorf("hold window %v outside (0, 2s]", c.Input.HoldWindow)
	}
	return nil
}

func unit(v float64) bool {
	return v >= 0 && v <= 1
}

// FrameInterval returns the frame driver tick
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
