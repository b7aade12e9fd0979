package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/starford/daylog/internal/index"
	"github.com/starford/daylog/internal/storage"
	"github.com/starford/daylog/internal/tui"
)

// Run starts the application with the given options: it opens the log
// store, builds the initial index, and supervises the file watcher and
// the terminal UI until one of them stops.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := app.config

	base := cfg.Store.Path
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		base = filepath.Join(home, "daylog")
	}

	store, err := storage.Open(base)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	if err := store.Initialize(); err != nil {
		return fmt.Errorf("seed store: %w", err)
	}

	logPath := cfg.App.LogFile
	if logPath == "" {
		logPath = filepath.Join(store.Root(), "daylog.log")
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("configuration loaded",
		slog.String("store_path", store.Root()),
		slog.String("log_level", cfg.App.LogLevel.String()))

	projects, err := store.LoadProjects()
	if err != nil {
		return err
	}
	people, err := store.LoadPeople()
	if err != nil {
		return err
	}

	ix := index.Build(store, nil, logger)
	logger.Info("initial index built", slog.Int("entries", len(ix.Entries())))

	program := tui.NewProgram(tui.Deps{
		Store:    store,
		Index:    ix,
		Projects: projects,
		People:   people,
		Statuses: cfg.Projects.Statuses,
		Groups:   cfg.Projects.Groups,
		Logger:   logger,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	// Watch for external hand-edits and tell the UI to re-scan.
	g.Go(func() error {
		return index.Watch(gCtx, store.Root(), logger, func() {
			program.Send(tui.StoreChangedMsg{})
		})
	})

	g.Go(func() error {
		defer cancel()
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("terminal ui: %w", err)
		}
		return nil
	})

	// Stop the UI when the outer context is cancelled (signals).
	g.Go(func() error {
		<-gCtx.Done()
		program.Quit()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("stopped")
	return nil
}
