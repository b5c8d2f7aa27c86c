// Package config loads embed definitions from YAML files for the CLI.
package config

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/audiom/embed-go/pkg/embed"
)

// File is the YAML embed-definition schema. Sources accept either bare name
// strings or full mappings; center is a [longitude, latitude] pair.
type File struct {
	EmbedID          string         `yaml:"embedId"`
	APIKey           string         `yaml:"apiKey"`
	Sources          []embed.Source `yaml:"sources"`
	Center           []float64      `yaml:"center"`
	Latitude         *float64       `yaml:"latitude"`
	Longitude        *float64       `yaml:"longitude"`
	Zoom             *float64       `yaml:"zoom"`
	Soundpack        string         `yaml:"soundpack"`
	Demo             *bool          `yaml:"demo"`
	Title            string         `yaml:"title"`
	ShowVisualMap    *bool          `yaml:"showVisualMap"`
	Heading          *int           `yaml:"heading"`
	ShowHeading      *bool          `yaml:"showHeading"`
	StepSize         string         `yaml:"stepSize"`
	AdditionalParams embed.Params   `yaml:"additionalParams"`
}

// Load reads and parses an embed definition file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses an embed definition document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if f.APIKey == "" {
		return nil, fmt.Errorf("config: apiKey is required")
	}
	if len(f.Center) != 0 && len(f.Center) != 2 {
		return nil, fmt.Errorf("config: center must be [longitude, latitude], got %d values", len(f.Center))
	}
	return &f, nil
}

// Options converts the file into embed construction options.
func (f *File) Options() embed.Options {
	opts := embed.Options{
		APIKey:           f.APIKey,
		Sources:          f.Sources,
		Latitude:         f.Latitude,
		Longitude:        f.Longitude,
		Zoom:             f.Zoom,
		Soundpack:        f.Soundpack,
		Demo:             f.Demo,
		Title:            f.Title,
		ShowVisualMap:    f.ShowVisualMap,
		Heading:          f.Heading,
		ShowHeading:      f.ShowHeading,
		StepSizeText:     f.StepSize,
		AdditionalParams: f.AdditionalParams,
	}
	if len(f.Center) == 2 {
		center := orb.Point{f.Center[0], f.Center[1]}
		opts.Center = &center
	}
	return opts
}

// Build constructs the embed configuration. An empty or "dynamic" embedId
// selects dynamic mode; anything else is a static identifier.
func (f *File) Build() (*embed.Config, error) {
	if f.EmbedID == "" || f.EmbedID == embed.DynamicEmbedID {
		return embed.Dynamic(f.Options())
	}
	return embed.Static(f.EmbedID, f.APIKey, f.Options())
}
