package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-sod/knncv/internal/buildinfo"
	knncv "github.com/go-sod/knncv/internal/config"
	"github.com/go-sod/knncv/internal/dataset"
	"github.com/go-sod/knncv/internal/logging"
	"github.com/go-sod/knncv/internal/report"
	"github.com/go-sod/knncv/internal/setup"
	"github.com/go-sod/knncv/internal/shutdown"
)

const usage = "usage: knncv <path to data file>"

var errUsage = errors.New("missing data file argument")

func main() {
	_, _ = fmt.Fprint(os.Stderr, buildinfo.Graffiti)
	_, _ = fmt.Fprintf(
		os.Stderr,
		"%s: %s, %s\n",
		buildinfo.Info.Name(),
		buildinfo.Info.Time(),
		buildinfo.Info.Tag(),
	)

	ctx, done := shutdown.New()
	logger := logging.FromContext(ctx)
	err := run(ctx, os.Args[1:], os.Stdout)
	done()

	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		_, _ = fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	case errors.Is(err, dataset.ErrNotExist):
		_, _ = fmt.Fprintln(os.Stderr, dataset.ErrNotExist.Error())
		os.Exit(1)
	default:
		logger.Fatal(err)
	}
}

func run(ctx context.Context, args []string, w io.Writer) (err error) {
	if len(args) < 1 {
		return errUsage
	}
	path := args[0]

	config := knncv.Config{}
	env, err := setup.Setup(ctx, &config)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}
	defer func() {
		if cerr := env.Close(ctx); cerr != nil && err == nil {
			err = fmt.Errorf("env.Close: %w", cerr)
		}
	}()

	points, err := dataset.Load(ctx, path, config.Dataset.Delimiter)
	if err != nil {
		return fmt.Errorf("dataset.Load: %w", err)
	}

	printer := report.NewPrinter(w)
	for _, name := range config.Experiment.Experiments {
		outcome, err := env.Runner().Run(ctx, name, points)
		if err != nil {
			return fmt.Errorf("runner.Run: %w", err)
		}
		if err := printer.Print(*outcome); err != nil {
			return fmt.Errorf("printer.Print: %w", err)
		}
		if reports := env.Reports(); reports != nil {
			if err := reports.StoreMany(ctx, report.Reports(path, *outcome)); err != nil {
				return fmt.Errorf("reports.StoreMany: %w", err)
			}
		}
	}

	return nil
}
