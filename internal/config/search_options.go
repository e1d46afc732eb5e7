package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// TimeOptions describes the client's cook-time slider. Max doubles as the
// "no limit" value.
type TimeOptions struct {
	Min     int `yaml:"min" json:"min"`
	Max     int `yaml:"max" json:"max"`
	Step    int `yaml:"step" json:"step"`
	Default int `yaml:"default" json:"default"`
}

// SearchOptions are the choices offered by the search form.
type SearchOptions struct {
	Cuisines []string    `yaml:"cuisines" json:"cuisines"`
	MaxTime  TimeOptions `yaml:"max_time" json:"maxTime"`
}

// DefaultSearchOptions returns the built-in search form choices.
func DefaultSearchOptions() *SearchOptions {
	return &SearchOptions{
		Cuisines: []string{"Italian", "Mexican", "Indian", "Chinese", "American", "Japanese", "British", "Thai"},
		MaxTime:  TimeOptions{Min: 15, Max: 105, Step: 15, Default: 60},
	}
}

// LoadSearchOptions reads search form choices from a YAML file. A missing
// file yields the defaults; a malformed one is an error.
func LoadSearchOptions(path string) (*SearchOptions, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSearchOptions(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read search options file: %w", err)
	}

	options := DefaultSearchOptions()
	if err := yaml.Unmarshal(data, options); err != nil {
		return nil, fmt.Errorf("failed to parse search options YAML: %w", err)
	}
	if options.MaxTime.Step <= 0 || options.MaxTime.Min > options.MaxTime.Max {
		return nil, fmt.Errorf("invalid max_time options: %+v", options.MaxTime)
	}

	return options, nil
}
