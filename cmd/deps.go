package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/xolan/acme/internal/cli"
	"github.com/xolan/acme/internal/config"
	"github.com/xolan/acme/internal/service"
	"github.com/xolan/acme/internal/storage"
)

// newServices locates the metrics directory and builds the services over it.
// Tests replace it.
var newServices = service.NewServices

// setupLogger installs the default slog handler on w. Verbose enables debug output.
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// ensureServices attaches services for dir to deps unless they are already set.
// It reports the failure and exits when no metrics directory can be found.
func ensureServices(deps *cli.Deps, dir string) bool {
	if deps.Services != nil {
		return true
	}

	services, err := newServices(dir)
	if err != nil {
		if errors.Is(err, storage.ErrLogsDirNotFound) {
			printLogsDirNotFound(deps, err)
		} else {
			cli.PrintError(deps.Stderr, "Failed to initialize", err, "Check that your config file is valid TOML")
		}
		deps.Exit(1)
		return false
	}

	deps.Services = services
	return true
}

// ensureConfigServices is ensureServices for the config commands, which also
// work outside a metrics directory: only the global config is used there.
func ensureConfigServices(deps *cli.Deps, dir string) bool {
	if deps.Services != nil {
		return true
	}

	services, err := newServices(dir)
	if err == nil {
		deps.Services = services
		return true
	}
	if !errors.Is(err, storage.ErrLogsDirNotFound) {
		cli.PrintError(deps.Stderr, "Failed to load configuration", err, "Check that your config file is valid TOML")
		deps.Exit(1)
		return false
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		cli.PrintError(deps.Stderr, "Failed to determine config file location", err, "Check that your home directory is accessible")
		deps.Exit(1)
		return false
	}
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		cli.PrintError(deps.Stderr, "Failed to load configuration", err, fmt.Sprintf("Check that your config file is valid TOML: %s", configPath))
		deps.Exit(1)
		return false
	}
	deps.Services = &service.Services{Config: service.NewConfigService(configPath, "", cfg)}
	return true
}

func printLogsDirNotFound(deps *cli.Deps, err error) {
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Logs directory not found")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	_, _ = fmt.Fprintln(deps.Stderr, "You have two options:")
	_, _ = fmt.Fprintln(deps.Stderr, " - Run this command from within the metrics directory.")
	_, _ = fmt.Fprintln(deps.Stderr, " - Explicitly set the metrics directory with --dir (e.g. acme --dir ~/metrics ...)")
}
