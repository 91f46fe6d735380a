package config

import "time"

// APIConfig contains the provider endpoint configuration
type APIConfig struct {
	StopAreasURL      string `yaml:"stopAreasURL" validate:"omitempty,url"`
	DepartureBoardURL string `yaml:"departureBoardURL" validate:"omitempty,url"`
	TimeoutMS         int    `yaml:"timeoutMS" validate:"gte=0"`
}

// CacheConfig contains the stop-list cache configuration
type CacheConfig struct {
	File        string `yaml:"file"`
	MaxAgeHours int    `yaml:"maxAgeHours" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	API   APIConfig   `yaml:"api"`
	Cache CacheConfig `yaml:"cache"`
}

// Timeout returns the HTTP timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// MaxAge returns the cache expiry as a duration.
func (c CacheConfig) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeHours) * time.Hour
}
