// Package config resolves the settings of the tspgen subcommands.
//
// Precedence: built-in defaults < YAML file (--config) < flags set on the
// command line. A flag left at its default never overrides the file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspgen/cluster"
	"github.com/katalvlaran/tspgen/codec"
	"github.com/katalvlaran/tspgen/route"
)

// ErrConfig is returned for unreadable or inconsistent settings.
var ErrConfig = errors.New("config: invalid settings")

// Generate holds the settings of "tspgen generate".
type Generate struct {
	NbCities    int     `yaml:"nb_cities"`
	NbCentroids int     `yaml:"nb_centroids"`
	Max         float64 `yaml:"max"`
	StdDev      float64 `yaml:"std_dev"`
	Seed        *uint64 `yaml:"seed"`
	Assignment  string  `yaml:"assignment"`
	Boundary    string  `yaml:"boundary"`
	Format      string  `yaml:"format"`
	Distances   bool    `yaml:"distances"`
	Output      string  `yaml:"output"`
	LogLevel    string  `yaml:"log_level"`
}

// DefaultGenerate mirrors cluster.DefaultParams: 10 cities, 3 centroids,
// max 1000, std-dev 10, no seed.
func DefaultGenerate() Generate {
	p := cluster.DefaultParams()
	return Generate{
		NbCities:    p.Cities,
		NbCentroids: p.Centroids,
		Max:         p.MaxWidth,
		StdDev:      p.StdDev,
		Assignment:  p.Assignment.String(),
		Boundary:    p.Boundary.String(),
		Format:      codec.JSON.String(),
		LogLevel:    "info",
	}
}

// Params converts the settings into generator parameters.
func (g Generate) Params() (cluster.Params, error) {
	a, err := cluster.ParseAssignment(g.Assignment)
	if err != nil {
		return cluster.Params{}, err
	}
	b, err := cluster.ParseBoundary(g.Boundary)
	if err != nil {
		return cluster.Params{}, err
	}
	return cluster.Params{
		Cities:     g.NbCities,
		Centroids:  g.NbCentroids,
		MaxWidth:   g.Max,
		StdDev:     g.StdDev,
		Seed:       g.Seed,
		Assignment: a,
		Boundary:   b,
	}, nil
}

// OutputFormat parses the Format setting.
func (g Generate) OutputFormat() (codec.Format, error) {
	return codec.ParseFormat(g.Format)
}

// Visualize holds the settings of "tspgen visualize".
type Visualize struct {
	Instance string  `yaml:"instance"`
	Solution string  `yaml:"solution"`
	Output   string  `yaml:"output"`
	Title    string  `yaml:"title"`
	Speed    float64 `yaml:"speed"`
	Open     bool    `yaml:"open"`
	LogLevel string  `yaml:"log_level"`
}

// DefaultVisualize returns closed routes at route.DefaultSpeed.
func DefaultVisualize() Visualize {
	return Visualize{
		Speed:    route.DefaultSpeed,
		LogLevel: "info",
	}
}

// Validate checks the settings that cannot be defaulted.
func (v Visualize) Validate() error {
	if v.Instance == "" {
		return fmt.Errorf("config: --instance is required: %w", ErrConfig)
	}
	return nil
}

// LoadYAML decodes r into v. Unknown keys are rejected.
func LoadYAML(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode yaml: %v: %w", err, ErrConfig)
	}
	return nil
}

// LoadFile decodes the YAML file at path into v.
func LoadFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %v: %w", err, ErrConfig)
	}
	defer f.Close()

	return LoadYAML(f, v)
}
