package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Content  ContentConfig
	Carousel CarouselConfig
	Tabs     TabsConfig
	UI       UIConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// ContentConfig points at an optional layout file that takes precedence over
// the database.
type ContentConfig struct {
	Path string
}

type CarouselConfig struct {
	Interval time.Duration
	Autoplay bool
}

type TabsConfig struct {
	NarrowWidth int `mapstructure:"narrow_width"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string
}

type LogConfig struct {
	Level string
	File  string
}

// Load reads configuration from file and env. Env var overrides use prefix SHOWCASE_.
// An explicit path wins over SHOWCASE_CONFIG.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := path
	if cfgPath == "" {
		cfgPath = os.Getenv("SHOWCASE_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "showcase"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHOWCASE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default file is fine; a named file that cannot be read is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgPath != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "showcase", "showcase.db"))
	v.SetDefault("content.path", "")
	v.SetDefault("carousel.interval", "5s")
	v.SetDefault("carousel.autoplay", true)
	v.SetDefault("tabs.narrow_width", 60)
	v.SetDefault("ui.theme", "mocha")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Validate rejects values the components cannot work with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("database.path must be set")
	}
	if c.Carousel.Interval < 100*time.Millisecond {
		return fmt.Errorf("carousel.interval %s is below 100ms", c.Carousel.Interval)
	}
	if c.Tabs.NarrowWidth < 0 {
		return fmt.Errorf("tabs.narrow_width must not be negative")
	}
	switch strings.ToLower(c.UI.Theme) {
	case "mocha", "latte":
	default:
		return fmt.Errorf("ui.theme %q: want mocha or latte", c.UI.Theme)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: want debug, info, warn or error", c.Log.Level)
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = os.Getenv("SHOWCASE_CONFIG")
	}
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "showcase", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("content.path", cfg.Content.Path)
	v.Set("carousel.interval", cfg.Carousel.Interval.String())
	v.Set("carousel.autoplay", cfg.Carousel.Autoplay)
	v.Set("tabs.narrow_width", cfg.Tabs.NarrowWidth)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
