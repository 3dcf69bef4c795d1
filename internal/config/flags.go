package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
)

// ParseGenerate resolves "tspgen generate" settings from args.
func ParseGenerate(args []string, output io.Writer) (Generate, error) {
	var (
		cfgFile string
		flagged = DefaultGenerate()
	)

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfgFile, "config", "", "YAML file with generation settings")
	fs.IntVar(&flagged.NbCities, "nb-cities", flagged.NbCities, "number of cities to generate")
	fs.IntVar(&flagged.NbCentroids, "nb-centroids", flagged.NbCentroids, "number of cluster centroids")
	fs.Float64Var(&flagged.Max, "max", flagged.Max, "width of the square map")
	fs.Float64Var(&flagged.StdDev, "std-dev", flagged.StdDev, "standard deviation between a city and its centroid")
	fs.Func("seed", "seed for a reproducible instance (default: OS entropy)", func(s string) error {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		flagged.Seed = &v
		return nil
	})
	fs.StringVar(&flagged.Assignment, "assignment", flagged.Assignment, "centroid assignment: round-robin, blocked or uniform")
	fs.StringVar(&flagged.Boundary, "boundary", flagged.Boundary, "out-of-map policy: none or clamp")
	fs.StringVar(&flagged.Format, "format", flagged.Format, "output format: json, geojson or text")
	fs.BoolVar(&flagged.Distances, "distances", flagged.Distances, "embed the distance matrix in json output")
	fs.StringVar(&flagged.Output, "output", flagged.Output, "output file (default: stdout)")
	fs.StringVar(&flagged.LogLevel, "log-level", flagged.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return Generate{}, err
	}
	if fs.NArg() > 0 {
		return Generate{}, fmt.Errorf("config: unexpected arguments %v: %w", fs.Args(), ErrConfig)
	}

	cfg := DefaultGenerate()
	if cfgFile != "" {
		if err := LoadFile(cfgFile, &cfg); err != nil {
			return Generate{}, err
		}
	}

	setters := map[string]func(){
		"nb-cities":    func() { cfg.NbCities = flagged.NbCities },
		"nb-centroids": func() { cfg.NbCentroids = flagged.NbCentroids },
		"max":          func() { cfg.Max = flagged.Max },
		"std-dev":      func() { cfg.StdDev = flagged.StdDev },
		"seed":         func() { cfg.Seed = flagged.Seed },
		"assignment":   func() { cfg.Assignment = flagged.Assignment },
		"boundary":     func() { cfg.Boundary = flagged.Boundary },
		"format":       func() { cfg.Format = flagged.Format },
		"distances":    func() { cfg.Distances = flagged.Distances },
		"output":       func() { cfg.Output = flagged.Output },
		"log-level":    func() { cfg.LogLevel = flagged.LogLevel },
	}
	fs.Visit(func(f *flag.Flag) {
		if set, ok := setters[f.Name]; ok {
			set()
		}
	})

	return cfg, nil
}

// ParseVisualize resolves "tspgen visualize" settings from args.
func ParseVisualize(args []string, output io.Writer) (Visualize, error) {
	var (
		cfgFile string
		flagged = DefaultVisualize()
	)

	fs := flag.NewFlagSet("visualize", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfgFile, "config", "", "YAML file with visualization settings")
	fs.StringVar(&flagged.Instance, "instance", flagged.Instance, "path to a json instance file")
	fs.StringVar(&flagged.Solution, "solution", flagged.Solution, "route as whitespace-separated city indices")
	fs.StringVar(&flagged.Output, "output", flagged.Output, "output html file (default: stdout)")
	fs.StringVar(&flagged.Title, "title", flagged.Title, "page title")
	fs.Float64Var(&flagged.Speed, "speed", flagged.Speed, "travel speed in map units per hour")
	fs.BoolVar(&flagged.Open, "open", flagged.Open, "do not add the return leg to the first city")
	fs.StringVar(&flagged.LogLevel, "log-level", flagged.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return Visualize{}, err
	}
	if fs.NArg() > 0 {
		return Visualize{}, fmt.Errorf("config: unexpected arguments %v: %w", fs.Args(), ErrConfig)
	}

	cfg := DefaultVisualize()
	if cfgFile != "" {
		if err := LoadFile(cfgFile, &cfg); err != nil {
			return Visualize{}, err
		}
	}

	setters := map[string]func(){
		"instance":  func() { cfg.Instance = flagged.Instance },
		"solution":  func() { cfg.Solution = flagged.Solution },
		"output":    func() { cfg.Output = flagged.Output },
		"title":     func() { cfg.Title = flagged.Title },
		"speed":     func() { cfg.Speed = flagged.Speed },
		"open":      func() { cfg.Open = flagged.Open },
		"log-level": func() { cfg.LogLevel = flagged.LogLevel },
	}
	fs.Visit(func(f *flag.Flag) {
		if set, ok := setters[f.Name]; ok {
			set()
		}
	})

	return cfg, cfg.Validate()
}
