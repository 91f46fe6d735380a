package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultStopAreasURL      = "https://www.vasttrafik.se/api/geography/stopareas"
	defaultDepartureBoardURL = "https://www.vasttrafik.se/api/departure-board/"
	defaultTimeoutMS         = 10000
	defaultMaxAgeHours       = 7 * 24

	cacheFileName = "vasttrafik-stops.json"
)

// Load reads and validates the application configuration from the
// given YAML file. The program runs fine without one: a missing file
// yields the built-in defaults, and any field left out of the file is
// defaulted after load. An unreadable or invalid file is an error.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	default:
		return nil, err
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, err
	}

	if cfg.API.StopAreasURL == "" {
		cfg.API.StopAreasURL = defaultStopAreasURL
	}
	if cfg.API.DepartureBoardURL == "" {
		cfg.API.DepartureBoardURL = defaultDepartureBoardURL
	}
	if cfg.API.TimeoutMS == 0 {
		cfg.API.TimeoutMS = defaultTimeoutMS
	}
	if cfg.Cache.File == "" {
		cfg.Cache.File = filepath.Join(os.TempDir(), cacheFileName)
	}
	if cfg.Cache.MaxAgeHours == 0 {
		cfg.Cache.MaxAgeHours = defaultMaxAgeHours
	}

	return &cfg, nil
}
