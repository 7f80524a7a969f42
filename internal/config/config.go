// Package config loads game settings from defaults, an optional TOML file and
// PACMAN_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	configDirName  = "pacman"
	configFileName = "config.toml"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Title           string  `toml:"title"`
	ScreenWidth     int     `toml:"screen_width"`
	ScreenHeight    int     `toml:"screen_height"`
	CellSize        int     `toml:"cell_size"`
	FrameIntervalMS int     `toml:"frame_interval_ms"`
	FontSize        float64 `toml:"font_size"`

	// Debug overlays the measured TPS and FPS.
	Debug bool `toml:"debug"`
}

func Default() Config {
	return Config{
		Title:           "Pacman (Go + Ebiten)",
		ScreenWidth:     800,
		ScreenHeight:    600,
		CellSize:        20,
		FrameIntervalMS: 100,
		FontSize:        24,
	}
}

// configBaseDir determines the directory holding config.toml.
// If PACMAN_CONFIG_DIR is set, it is used as-is. Otherwise, use UserConfigDir()/pacman.
func configBaseDir() (string, error) {
	if env := os.Getenv("PACMAN_CONFIG_DIR"); env != "" {
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName), nil
}

// Load builds the config. An explicit path must exist; when path is empty the
// file in the config directory is used if present. The returned string is the
// file that was read, or "" when only defaults and environment applied.
func Load(path string) (Config, string, error) {
	cfg := Default()

	src := path
	if src == "" {
		dir, err := configBaseDir()
		if err == nil {
			candidate := filepath.Join(dir, configFileName)
			if _, statErr := os.Stat(candidate); statErr == nil {
				src = candidate
			} else if !errors.Is(statErr, fs.ErrNotExist) {
				return cfg, "", fmt.Errorf("config: stat %s: %w", candidate, statErr)
			}
		}
	}

	if src != "" {
		md, err := toml.DecodeFile(src, &cfg)
		if err != nil {
			return cfg, src, fmt.Errorf("config: decode %s: %w", src, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			log.Printf("[config] ignoring unknown keys in %s: %v", src, undecoded)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, src, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, src, err
	}
	return cfg, src, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PACMAN_CELL_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PACMAN_CELL_SIZE=%q: %v", ErrInvalid, v, err)
		}
		c.CellSize = n
	}
	if v := os.Getenv("PACMAN_FRAME_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PACMAN_FRAME_MS=%q: %v", ErrInvalid, v, err)
		}
		c.FrameIntervalMS = n
	}
	if v := os.Getenv("PACMAN_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: PACMAN_DEBUG=%q: %v", ErrInvalid, v, err)
		}
		c.Debug = b
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.ScreenWidth, c.ScreenHeight)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell_size %d", ErrInvalid, c.CellSize)
	case c.FrameIntervalMS <= 0:
		return fmt.Errorf("%w: frame_interval_ms %d", ErrInvalid, c.FrameIntervalMS)
	case c.FontSize <= 0:
		return fmt.Errorf("%w: font_size %v", ErrInvalid, c.FontSize)
	}
	return nil
}

func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMS) * time.Millisecond
}

// TPS is the tick rate that paces one tick per frame interval, at least 1.
func (c Config) TPS() int {
	tps := int(time.Second / c.FrameInterval())
	if tps < 1 {
		return 1
	}
	return tps
}
