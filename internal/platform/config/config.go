package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	FileName = "gateprep.yaml"

	defaultLogLevel     = "warn"
	defaultMode         = "da"
	defaultTickInterval = time.Second
	defaultDBFile       = "gateprep.db"
	defaultLogFile      = "gateprep.log"
)

type Config struct {
	DataDir      string        `validate:"required"`
	DBPath       string        `validate:"required"`
	LogPath      string        `validate:"required"`
	LogLevel     string        `validate:"oneof=trace debug info warn error off"`
	DefaultMode  string        `validate:"required,alphanum,lowercase"`
	TickInterval time.Duration `validate:"gte=100ms,lte=1m"`
}

var validate = validator.New()

// New returns the built-in defaults rooted at dataDir.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return Config{
		DataDir:      dataDir,
		DBPath:       filepath.Join(dataDir, defaultDBFile),
		LogPath:      filepath.Join(dataDir, defaultLogFile),
		LogLevel:     defaultLogLevel,
		DefaultMode:  defaultMode,
		TickInterval: defaultTickInterval,
	}, nil
}

// Load reads an optional YAML file over the defaults. An empty path means
// <dataDir>/gateprep.yaml; a missing file is not an error.
func Load(dataDir, path string) (Config, error) {
	cfg, err := New(dataDir)
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		path = filepath.Join(dataDir, FileName)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("default_mode", defaultMode)
	v.SetDefault("tick_interval", defaultTickInterval)
	v.SetDefault("db_file", defaultDBFile)
	v.SetDefault("log_file", defaultLogFile)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg.LogLevel = v.GetString("log_level")
	cfg.DefaultMode = v.GetString("default_mode")
	cfg.TickInterval = v.GetDuration("tick_interval")
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultTickInterval
	}
	cfg.DBPath = resolve(dataDir, v.GetString("db_file"))
	cfg.LogPath = resolve(dataDir, v.GetString("log_file"))

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func resolve(dataDir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dataDir, file)
}

// DefaultDataDir is ~/.gateprep, or ./.gateprep when no home is known.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gateprep"
	}
	return filepath.Join(home, ".gateprep")
}
