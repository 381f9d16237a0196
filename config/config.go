package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/bin2bit/bittext"
	"github.com/spacemeshos/bin2bit/diag"
)

const (
	MinWidth = 8
	MaxWidth = 4096

	MinChunkSize = 1
	MaxChunkSize = 1 << 20
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultWidth          = diag.DefaultWidth
	DefaultChunkSize      = bittext.DefaultChunkSize
	DefaultLogLevel       = "warn"
)

var (
	DefaultHomeDir    = filepath.Join(smutil.GetUserHomeDirectory(), ".bin2bit")
	DefaultConfigFile = filepath.Join(DefaultHomeDir, DefaultConfigFileName)
)

type Config struct {
	// Width of a diagnostic line.
	Width     int    `mapstructure:"width"`
	ChunkSize int    `mapstructure:"chunk-size"`
	LogLevel  string `mapstructure:"log-level"`
	Trace     bool   `mapstructure:"trace"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:     DefaultWidth,
		ChunkSize: DefaultChunkSize,
		LogLevel:  DefaultLogLevel,
	}
}

func (cfg *Config) Validate() error {
	if cfg.Width < MinWidth {
		return fmt.Errorf("invalid `Width`; expected: >= %d, given: %d", MinWidth, cfg.Width)
	}

	if cfg.Width > MaxWidth {
		return fmt.Errorf("invalid `Width`; expected: <= %d, given: %d", MaxWidth, cfg.Width)
	}

	if cfg.ChunkSize < MinChunkSize {
		return fmt.Errorf("invalid `ChunkSize`; expected: >= %d, given: %d", MinChunkSize, cfg.ChunkSize)
	}

	if cfg.ChunkSize > MaxChunkSize {
		return fmt.Errorf("invalid `ChunkSize`; expected: <= %d, given: %d", MaxChunkSize, cfg.ChunkSize)
	}

	if _, err := cfg.Level(); err != nil {
		return fmt.Errorf("invalid `LogLevel`: %w", err)
	}

	return nil
}

// Level returns the parsed LogLevel.
func (cfg *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(cfg.LogLevel)
}

// Load reads the config file at path into the defaults, then applies
// whatever vip already holds (bound command-line flags). An empty path reads
// DefaultConfigFile if there is one.
func Load(vip *viper.Viper, path string) (*Config, error) {
	if path != "" {
		path = smutil.GetCanonicalPath(path)
	}
	if err := loadConfigFile(vip, path); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadConfigFile(vip *viper.Viper, fileLocation string) error {
	if fileLocation == "" {
		if _, err := os.Stat(DefaultConfigFile); errors.Is(err, fs.ErrNotExist) {
			// No config file, flags and defaults only.
			return nil
		}
		fileLocation = DefaultConfigFile
	}

	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}
