// Command notecal keeps calendar notes and reports public holidays.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/notecal/internal/adapters/driven/config/file"
	"github.com/custodia-labs/notecal/internal/adapters/driven/isdayoff"
	"github.com/custodia-labs/notecal/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/notecal/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/notecal/internal/adapters/driving/cli"
	"github.com/custodia-labs/notecal/internal/core/domain"
	"github.com/custodia-labs/notecal/internal/core/ports/driven"
	"github.com/custodia-labs/notecal/internal/core/services"
	"github.com/custodia-labs/notecal/internal/logger"
)

// configDirEnv overrides the configuration directory.
const configDirEnv = "NOTECAL_CONFIG_DIR"

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

// wiring holds the services built by the composition root.
type wiring struct {
	notes    *services.NoteService
	holiday  *services.HolidayService
	settings *services.SettingsService
	backend  string
	close    func() error
}

// wire builds stores, adapters and services. Problems with the configuration
// are reported to warn and fall back to defaults so the notes keep working.
func wire(configDir string, warn io.Writer) wiring {
	var configStore driven.ConfigStore
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		fmt.Fprintf(warn, "warning: %v; using default settings\n", err)
		configStore = memory.NewConfigStore(nil)
	} else {
		configStore = fileStore
	}

	settingsService := services.NewSettingsService(configStore)
	settings := settingsService.Get()

	holidays, err := settingsService.HolidayTable()
	if err != nil {
		fmt.Fprintf(warn, "warning: %v; using the default holiday table\n", err)
		holidays = domain.DefaultHolidayTable()
	}

	oracle := isdayoff.NewClient(isdayoff.ConfigFromSettings(settings.Oracle))
	logger.Debug("oracle: %s (%.1f req/s, burst %d)",
		settings.Oracle.BaseURL, settings.Oracle.RequestsPerSecond, settings.Oracle.Burst)

	noteStore, backend, closeStore := openNoteStore(settings.Storage.Backend, warn)
	logger.Debug("note storage: %s", backend)

	return wiring{
		notes:    services.NewNoteService(noteStore),
		holiday:  services.NewHolidayService(oracle, holidays),
		settings: settingsService,
		backend:  backend,
		close:    closeStore,
	}
}

// openNoteStore returns the configured note store, the backend actually in
// use and a function releasing it. A failing SQLite store falls back to memory.
func openNoteStore(backend string, warn io.Writer) (driven.NoteStore, string, func() error) {
	if backend == domain.StorageBackendSQLite {
		store, err := sqlite.NewNoteStore()
		if err == nil {
			return store, domain.StorageBackendSQLite, store.Close
		}
		fmt.Fprintf(warn, "warning: %v; keeping notes in memory\n", err)
	}
	return memory.NewNoteStore(), domain.StorageBackendMemory, func() error { return nil }
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := wire(os.Getenv(configDirEnv), os.Stderr)

	cli.SetVersion(version)
	cli.SetNoteService(w.notes)
	cli.SetHolidayService(w.holiday)
	cli.SetSettingsService(w.settings)

	err := cli.Execute(ctx)
	_ = w.close()
	_ = logger.Sync()
	if err != nil {
		stop()
		os.Exit(1)
	}
}
