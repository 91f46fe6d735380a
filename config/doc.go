// Package config handles application configuration loading and validation.
//
// Configuration is loaded from an optional YAML file and validated
// using struct tags. Missing values fall back to the public Västtrafik
// endpoints and a week-long stop cache in the system temp directory.
package config
