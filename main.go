// Package main implements the main entry point for the N64 ROM code region
// analyzer.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"

	appinfo "github.com/retroenv/n64coderegions/internal/app"
	"github.com/retroenv/n64coderegions/internal/batch"
	"github.com/retroenv/n64coderegions/internal/cli"
	"github.com/retroenv/n64coderegions/internal/pipeline"
	"github.com/retroenv/n64coderegions/internal/store"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := appinfo.NewLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			appinfo.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := appinfo.NewLogger(opts.Debug, opts.Quiet)
	appinfo.PrintBanner(logger, opts, version, commit, date)

	files, err := batch.ResolveFiles(opts.Input, opts.Batch)
	if err != nil {
		logger.Fatal(err.Error())
	}

	var st *store.Store
	if opts.Database != "" {
		st, err = store.Open(ctx, opts.Database)
		if err != nil {
			logger.Fatal(err.Error())
		}
		defer func() { _ = st.Close() }()
	}

	pl := pipeline.New(logger, st)

	// Batch runs against more than one file all report to the same stdout,
	// so writes from concurrent workers must be serialized to keep each
	// file's report from interleaving with another's.
	var writeMu sync.Mutex
	multiFile := len(files) > 1

	err = batch.Run(ctx, logger, files, func(path string) error {
		writer, closeWriter, err := outputWriter(opts.Output, multiFile)
		if err != nil {
			return err
		}
		defer closeWriter()

		if multiFile {
			writeMu.Lock()
			defer writeMu.Unlock()
		}

		_, err = pl.Execute(ctx, path, opts, writer)
		return err
	})

	if errors.Is(err, context.Canceled) {
		logger.Info("Operation cancelled")
		return
	}
	if err != nil {
		logger.Error("Analysis failed", log.Err(err))
		os.Exit(1)
	}
}

// outputWriter opens the configured report destination. Batch runs against
// more than one file always report to stdout, since a single -o path can't
// serve every result.
func outputWriter(path string, batchRun bool) (io.Writer, func(), error) {
	if path == "" || batchRun {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
