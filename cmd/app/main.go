package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/daylog/internal"
	pkgconfig "github.com/starford/daylog/pkg/config"
)

func run(_ context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()

	if dir := cmd.String("dir"); dir != "" {
		cfg.Store.Path = dir
	}

	// The store may carry its own config.yml; an explicit --config wins.
	configPath := cmd.String("config")
	if configPath == "" {
		base := cfg.Store.Path
		if base == "" {
			if home, err := os.UserHomeDir(); err == nil {
				base = filepath.Join(home, "daylog")
			}
		}
		if base != "" {
			configPath = filepath.Join(base, "config.yml")
		}
	}
	if configPath != "" {
		if err := pkgconfig.LoadIfPresent(configPath, cfg); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "daylog",
		Usage:  "Menu-driven day log and todo tracker over plain files",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Base directory of the log store",
				Sources: cli.EnvVars("DAYLOG_DIR"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (defaults to <dir>/config.yml)",
				Sources: cli.EnvVars("DAYLOG_CONFIG_FILE"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
