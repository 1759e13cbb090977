package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hamdanyasser/hotelref/internal/catalog"
	"github.com/hamdanyasser/hotelref/internal/config"
	"github.com/hamdanyasser/hotelref/internal/seed"
	"github.com/hamdanyasser/hotelref/internal/store"
	"github.com/hamdanyasser/hotelref/internal/worker"
)

// app is the per-command object graph: one store handle, one worker in
// front of it, and a controller that reads through the worker.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	handle  *store.Catalog
	worker  *worker.Worker
	ctl     *catalog.Controller
	out     *OutputFormatter
	stopped chan struct{}
}

// openMode says whether a command may seed on start.
type openMode int

const (
	openWithSeed openMode = iota
	openWithoutSeed
)

// openApp loads config, acquires the store, starts the worker, seeds if
// allowed, and loads the list. The caller must Close the app.
func openApp(cmd *cobra.Command, opts *RootOptions, mode openMode) (*app, error) {
	out := newFormatter(cmd, opts)

	cfg, err := config.Load(config.Options{ConfigFile: opts.ConfigFile, Flags: cmd.Flags()})
	if err != nil {
		return nil, out.Fail("failed to load config", NewExitError(ExitCommandError, err.Error()))
	}

	level := cfg.Level()
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if err := cfg.EnsureDBDir(); err != nil {
		return nil, out.Fail("failed to prepare database directory", err)
	}

	ctx := commandContext(cmd)
	handle := store.NewCatalog(cfg.DBPath, store.WithLogger(logger))
	st, err := handle.Acquire(ctx)
	if err != nil {
		return nil, out.Fail("failed to open database", err)
	}
	out.VerboseLog("database: %s", st.Path())

	a := &app{
		cfg:     cfg,
		logger:  logger,
		handle:  handle,
		worker:  worker.New(st, worker.WithLogger(logger)),
		out:     out,
		stopped: make(chan struct{}),
	}
	go func() {
		defer close(a.stopped)
		_ = a.worker.Run(context.Background())
	}()

	if mode == openWithSeed && cfg.SeedOnStart {
		if _, err := a.seed(ctx); err != nil {
			a.Close()
			return nil, out.Fail("failed to seed catalog", err)
		}
	}

	a.ctl = catalog.New(a.worker, catalog.WithLogger(logger))
	if err := a.ctl.Load(ctx); err != nil {
		a.Close()
		return nil, out.Fail("failed to load catalog", err)
	}

	return a, nil
}

func (a *app) seed(ctx context.Context) (seed.Result, error) {
	loader, err := seed.New(a.worker, seed.WithLogger(a.logger))
	if err != nil {
		return seed.Result{}, err
	}
	return loader.Run(ctx)
}

// Close stops the worker after it drains and releases the store.
func (a *app) Close() {
	a.worker.Stop()
	<-a.stopped
	if err := a.handle.Release(); err != nil {
		a.logger.Error("error closing database", "error", err)
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// withApp opens the app, runs fn, and closes the app.
func withApp(cmd *cobra.Command, opts *RootOptions, mode openMode, fn func(ctx context.Context, a *app) error) error {
	a, err := openApp(cmd, opts, mode)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(commandContext(cmd), a)
}

func newFormatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// parseID parses a positive record id argument.
func parseID(out *OutputFormatter, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, out.Fail("invalid id", NewExitError(ExitCommandError, fmt.Sprintf("%q is not a record id", arg)))
	}
	return id, nil
}
