package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/iamasit07/connect-n/internal/domain"
	"github.com/pkg/errors"
)

type Config struct {
	Game  GameConfig  `yaml:"game"`
	Log   LogConfig   `yaml:"log"`
	Watch WatchConfig `yaml:"watch"`
}

type GameConfig struct {
	Width     int    `yaml:"width" env:"BOARD_WIDTH" env-default:"7"`
	Height    int    `yaml:"height" env:"BOARD_HEIGHT" env-default:"6"`
	WinLength int    `yaml:"win_length" env:"WIN_LENGTH" env-default:"4"`
	Players   string `yaml:"players" env:"PLAYERS" env-default:"XO"`
}

type LogConfig struct {
	Level       string `yaml:"level" env:"LOG_LEVEL" env-default:"warn"`
	Development bool   `yaml:"development" env:"LOG_DEVELOPMENT" env-default:"false"`
}

// WatchConfig controls the read-only spectator server.
type WatchConfig struct {
	Enabled        bool          `yaml:"enabled" env:"WATCH_ENABLED" env-default:"false"`
	Port           string        `yaml:"port" env:"WATCH_PORT" env-default:"8080"`
	Secret         string        `yaml:"secret" env:"WATCH_SECRET"`
	TokenTTL       time.Duration `yaml:"token_ttl" env:"WATCH_TOKEN_TTL" env-default:"2h"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-separator:","`
	SweepInterval  time.Duration `yaml:"sweep_interval" env:"WATCH_SWEEP_INTERVAL" env-default:"30s"`
}

// Load reads the YAML file at path, if any, and applies environment
// overrides and defaults on top of it.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, errors.Wrap(err, "failed to read config from environment")
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, "config file %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	if _, err := cfg.Rules(); err != nil {
		return nil, err
	}
	if cfg.Watch.Enabled && (cfg.Watch.SweepInterval <= 0 || cfg.Watch.TokenTTL <= 0) {
		return nil, errors.New("watch sweep interval and token ttl must be positive")
	}
	return &cfg, nil
}

// LoadFromFlags resolves the config path from CONFIG_PATH or the -config
// flag and loads it. A missing path means environment only.
func LoadFromFlags() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configFlag := flag.String("config", "", "Path to configuration file")
		flag.Parse()
		configPath = *configFlag
	}
	return Load(configPath)
}

// Rules turns the game section into validated domain rules.
func (c *Config) Rules() (domain.Rules, error) {
	return domain.NewRules(c.Game.Width, c.Game.Height, c.Game.WinLength, c.Game.Players)
}

// Usage describes every environment variable the config understands.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
