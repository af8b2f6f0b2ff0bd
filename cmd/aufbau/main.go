// Command aufbau computes electron configurations.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/aufbau/internal/adapters/driven/config/file"
	"github.com/custodia-labs/aufbau/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/aufbau/internal/adapters/driving/cli"
	"github.com/custodia-labs/aufbau/internal/core/ports/driven"
	"github.com/custodia-labs/aufbau/internal/core/services"
	"github.com/custodia-labs/aufbau/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var store driven.ConfigStore
	fileStore, err := file.NewConfigStore(os.Getenv("AUFBAU_CONFIG_DIR"))
	if err != nil {
		// Commands still work with defaults when the config file is unusable.
		fmt.Fprintf(os.Stderr, "warning: %v; using default settings\n", err)
		store = memory.NewConfigStore()
	} else {
		store = fileStore
		cli.SetSettingsWatcher(watchSettings(fileStore))
	}

	settings := services.NewSettingsService(store)
	configuration := services.NewConfigurationService(settings)

	cli.SetVersion(version)
	cli.SetServices(configuration, settings)

	return cli.Execute(ctx)
}

// watchSettings reloads the store when its file changes and then notifies.
func watchSettings(store *file.ConfigStore) cli.SettingsWatcher {
	return func(ctx context.Context, onChange func()) error {
		w, err := file.NewWatcher(store.Path(), file.DefaultDebounce)
		if err != nil {
			return err
		}
		go w.Run(ctx, func() {
			if err := store.Load(); err != nil {
				logger.Warn("reload settings: %v", err)
				return
			}
			onChange()
		})
		return nil
	}
}
