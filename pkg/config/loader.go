package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable read by FromEnv.
const EnvPrefix = "GOODMAIL_"

var defaultEnvLoaded sync.Once

// FromEnv builds a configuration from GOODMAIL_* environment variables laid
// over the defaults. When paths are given, those .env files are loaded first
// and must exist; otherwise the default .env in the working directory is
// loaded once if present.
//
// Example:
//
//	cfg, err := config.FromEnv()
//	if err != nil {
//		return err
//	}
//	err = config.Configure(func(c *config.Config) { *c = cfg })
func FromEnv(paths ...string) (Config, error) {
	if len(paths) > 0 {
		if err := godotenv.Load(paths...); err != nil {
			return Config{}, errors.Join(ErrParsingConfig, err)
		}
	} else {
		defaultEnvLoaded.Do(func() {
			// Ignore errors - the .env file might not exist and that's ok
			_ = godotenv.Load()
		})
	}

	cfg := Default()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// FromFile builds a configuration from a YAML file laid over the defaults.
// Keys absent from the file keep their default values.
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
		}
		return Config{}, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustFromEnv works like FromEnv but panics if loading fails.
// Useful during application startup where broken configuration should
// prevent the process from starting.
func MustFromEnv(paths ...string) Config {
	cfg, err := FromEnv(paths...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load goodmail configuration: %v", err))
	}
	return cfg
}
