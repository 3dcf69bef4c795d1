package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/tspgen/cluster"
	"github.com/katalvlaran/tspgen/codec"
	"github.com/katalvlaran/tspgen/internal/config"
	"github.com/katalvlaran/tspgen/internal/logging"
	"github.com/katalvlaran/tspgen/render"
	"github.com/katalvlaran/tspgen/route"
)

const serviceName string = "tspgen"

var version = "develop"

var errUsage = errors.New("usage: tspgen <generate|visualize> [flags]")

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	exitIf(err, "command failed")
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "generate":
		return runGenerate(ctx, args[1:], stdout, stderr)
	case "visualize":
		return runVisualize(ctx, args[1:], stdout, stderr)
	case "-h", "--help", "help":
		fmt.Fprintln(stderr, errUsage)
		return flag.ErrHelp
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func runGenerate(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.ParseGenerate(args, stderr)
	if err != nil {
		return err
	}

	ctx, logger := logging.NewLogger(ctx, stderr, "generate", version, cfg.LogLevel)

	params, err := cfg.Params()
	if err != nil {
		return err
	}
	format, err := cfg.OutputFormat()
	if err != nil {
		return err
	}

	logger.Debug().
		Int("nb_cities", params.Cities).
		Int("nb_centroids", params.Centroids).
		Float64("max", params.MaxWidth).
		Float64("std_dev", params.StdDev).
		Str("assignment", params.Assignment.String()).
		Str("boundary", params.Boundary.String()).
		Msg("generating instance")

	inst, err := cluster.GenerateParams(params)
	if err != nil {
		return err
	}

	err = writeOutput(ctx, cfg.Output, stdout, func(w io.Writer) error {
		return codec.Encode(w, inst, format, codec.EncodeOptions{Distances: cfg.Distances})
	})
	if err != nil {
		return err
	}

	logger.Info().
		Uint64("seed", inst.Seed).
		Ints("cluster_sizes", inst.ClusterSizes()).
		Str("format", format.String()).
		Str("output", outputName(cfg.Output)).
		Msg("instance generated")

	return nil
}

func runVisualize(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.ParseVisualize(args, stderr)
	if err != nil {
		return err
	}

	ctx, logger := logging.NewLogger(ctx, stderr, "visualize", version, cfg.LogLevel)

	inst, err := readInstance(ctx, cfg.Instance)
	if err != nil {
		return err
	}

	opts := render.Options{Title: cfg.Title}
	if cfg.Solution != "" {
		summary, err := summarize(ctx, inst, cfg)
		if err != nil {
			return err
		}
		opts.Route = &summary
	}

	err = writeOutput(ctx, cfg.Output, stdout, func(w io.Writer) error {
		return render.Page(w, inst, opts)
	})
	if err != nil {
		return err
	}

	logger.Info().
		Str("instance", cfg.Instance).
		Int("cities", len(inst.Cities)).
		Str("output", outputName(cfg.Output)).
		Msg("map rendered")

	return nil
}

func summarize(ctx context.Context, inst *cluster.Instance, cfg config.Visualize) (route.Summary, error) {
	r, err := route.Parse(cfg.Solution)
	if err != nil {
		return route.Summary{}, err
	}
	if len(inst.Cities) == 0 {
		return route.Summary{}, fmt.Errorf("instance %s has no cities: %w", cfg.Instance, route.ErrIndexOutOfRange)
	}

	summary, err := route.Summarize(inst.DistanceMatrix(), r, cfg.Speed, !cfg.Open)
	if err != nil {
		return route.Summary{}, err
	}

	logger := logging.GetLoggerFromContext(ctx)
	logger.Info().
		Str("route", summary.Route.String()).
		Str("distance", summary.DistanceText()).
		Str("duration", summary.DurationText()).
		Float64("speed", cfg.Speed).
		Msg("route summarized")

	return summary, nil
}

func readInstance(ctx context.Context, path string) (*cluster.Instance, error) {
	logger := logging.GetLoggerFromContext(ctx)
	logger.Debug().Str("instance", path).Msg("reading instance")

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return codec.ReadJSON(f)
}

// writeOutput hands fn the file at path, or stdout when path is empty.
func writeOutput(ctx context.Context, path string, stdout io.Writer, fn func(io.Writer) error) error {
	logger := logging.GetLoggerFromContext(ctx)
	logger.Debug().Str("output", outputName(path)).Msg("writing output")

	if path == "" {
		return fn(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}

func exitIf(err error, msg string) {
	if err != nil {
		logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", serviceName).Logger()
		logger.Fatal().Err(err).Msg(msg)
	}
}
