package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. ENCARD_DATA_DIR.
const EnvPrefix = "ENCARD"

// Config holds application configuration loaded from file and environment.
type Config struct {
	DataDir  string `mapstructure:"data_dir"`  // directory holding questions.json and the log
	LogLevel string `mapstructure:"log_level"` // zap level name
	NoColor  bool   `mapstructure:"no_color"`  // disable terminal colours
}

// QuestionsPath returns the bank file for this config.
func (c Config) QuestionsPath() string {
	return QuestionsPath(c.DataDir)
}

// LogPath returns the log file for this config.
func (c Config) LogPath() string {
	return LogPath(c.DataDir)
}

// Load reads configuration from an optional config file and environment variables.
// An empty path falls back to $ENCARD_CONFIG and then <data-dir>/config.yml.
// The home directory is only required when no data dir is configured.
func Load(path string) (Config, error) {
	dataDir, homeErr := DefaultDataDir()

	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("data_dir", dataDir)
	v.SetDefault("log_level", "info")
	v.SetDefault("no_color", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := strings.TrimSpace(path)
	if explicit == "" {
		explicit = strings.TrimSpace(os.Getenv(EnvPrefix + "_CONFIG"))
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", explicit, err)
		}
	} else if dir := strings.TrimSpace(v.GetString("data_dir")); dir != "" {
		candidate := ConfigPath(dir)
		if _, err := os.Stat(candidate); err == nil {
			v.SetConfigFile(candidate)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", candidate, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("stat config %s: %w", candidate, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if strings.TrimSpace(cfg.DataDir) == "" && homeErr != nil {
		return Config{}, homeErr
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.NoColor = true
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
