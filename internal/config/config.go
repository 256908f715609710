// Package config loads runtime settings for the boundary library and CLI.
//
// Sources, lowest to highest precedence: built-in defaults, an optional
// YAML file, BORN_* environment variables. Load also reads a .env file in
// the working directory into the environment first; LoadEnv does not, and
// is what the shared library uses inside a host process.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/born-ml/bornffi/internal/device"
)

// EnvPrefix is prepended to every environment key, e.g. BORN_LOGGING_LEVEL.
const EnvPrefix = "BORN"

// Config represents the runtime configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Device  DeviceConfig  `mapstructure:"device"`
	Random  RandomConfig  `mapstructure:"random"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
	Console bool   `mapstructure:"console"`
}

type DeviceConfig struct {
	DisableCUDA   bool     `mapstructure:"disable_cuda"`
	DisableWebGPU bool     `mapstructure:"disable_webgpu"`
	CUDALibrary   []string `mapstructure:"cuda_library"`
	CuDNNLibrary  []string `mapstructure:"cudnn_library"`
}

type RandomConfig struct {
	// DefaultSeed, when non-nil, seeds the default generator at startup.
	DefaultSeed *int64 `mapstructure:"-"`
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "warn",
			Console: true,
		},
	}
}

// Load reads configuration from path (may be empty), a .env file and the
// environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return LoadEnv(path)
}

// LoadEnv reads configuration from path (may be empty) and the existing
// environment. It never modifies the environment.
func LoadEnv(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if v.IsSet("random.default_seed") {
		seed := v.GetInt64("random.default_seed")
		cfg.Random.DefaultSeed = &seed
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.console", cfg.Logging.Console)
	v.SetDefault("device.disable_cuda", cfg.Device.DisableCUDA)
	v.SetDefault("device.disable_webgpu", cfg.Device.DisableWebGPU)
	v.SetDefault("device.cuda_library", []string{})
	v.SetDefault("device.cudnn_library", []string{})
}

// DeviceOptions converts the device section into probe options.
func (c *Config) DeviceOptions() device.Options {
	return device.Options{
		DisableCUDA:    c.Device.DisableCUDA,
		DisableWebGPU:  c.Device.DisableWebGPU,
		CUDALibraries:  c.Device.CUDALibrary,
		CuDNNLibraries: c.Device.CuDNNLibrary,
	}
}
