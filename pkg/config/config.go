// Package config loads mathboard.toml, the board's optional configuration
// file. Every field has a sensible default; a missing file is not an
// error, so the zero-configuration path just works.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	boarderrors "github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/errors"
)

// DefaultFileName is the configuration file looked up when no explicit
// path is given.
const DefaultFileName = "mathboard.toml"

// Config is the full configuration tree.
type Config struct {
	Canvas   CanvasConfig   `toml:"canvas"`
	Engine   EngineConfig   `toml:"engine"`
	Autosave AutosaveConfig `toml:"autosave"`
	Redis    RedisConfig    `toml:"redis"`
}

// CanvasConfig sets the initial canvas dimensions.
type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// EngineConfig tunes constraint propagation. Zero values fall back to the
// constraint package defaults.
type EngineConfig struct {
	// MaxPasses bounds propagation sweeps per update.
	MaxPasses int `toml:"max_passes"`
	// ChangeThreshold is the coordinate delta that counts as a visible
	// change during a propagation pass.
	ChangeThreshold float64 `toml:"change_threshold"`
}

// AutosaveConfig controls the rolling autosave snapshot.
type AutosaveConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // empty means ~/.config/mathboard/snapshots
}

// RedisConfig configures the optional redis snapshot store backend.
// An empty Addr disables it.
type RedisConfig struct {
	Addr string   `toml:"addr"`
	TTL  Duration `toml:"ttl"` // e.g. "24h"
}

// Duration wraps time.Duration so TOML can express it as a string
// ("30m", "24h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Autosave: AutosaveConfig{
			Enabled: true,
		},
		Redis: RedisConfig{
			TTL: Duration{24 * time.Hour},
		},
	}
}

// Load reads the configuration at path, layering it over Default. An
// empty path looks for DefaultFileName in the working directory. A
// missing file returns Default with no error; a malformed file returns
// an INVALID_CONFIG error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultFileName
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, boarderrors.Wrap(boarderrors.ErrCodeStore, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, boarderrors.Wrap(boarderrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, nil
}

// AutosaveDir resolves the autosave directory, defaulting to
// ~/.config/mathboard/snapshots.
func (c Config) AutosaveDir() (string, error) {
	if c.Autosave.Dir != "" {
		return c.Autosave.Dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", boarderrors.Wrap(boarderrors.ErrCodeInternal, err, "resolve home directory")
	}
	return filepath.Join(home, ".config", "mathboard", "snapshots"), nil
}
