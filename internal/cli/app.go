// Package cli wires configuration, storage and the dialog bridge for the
// command line front end.
package cli

import (
	"context"
	"errors"
	"time"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/application/usecase"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/cli/styles"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/infrastructure/config"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/infrastructure/persistence/sqlite"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config  *config.Config
	Manager *config.Manager
	Theme   *styles.Theme
	db      *sqlite.LazyDB

	Bridge   *usecase.DialogBridge
	Windows  *usecase.ManageWindowsUseCase
	Alerts   *usecase.HandleAlertUseCase
	Recorder *usecase.RecordDialogsUseCase

	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, cfg := loadConfig()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	ctx := logging.WithContext(context.Background(), logger)

	bridge := usecase.NewDialogBridge(usecase.WithDialogTimeout(cfg.Dialogs.Timeout()))
	bridge.SetAutoAccept(cfg.Dialogs.AutoAccept)

	windows := usecase.NewManageWindowsUseCase(bridge)
	bridge.SetWindowFocus(windows)
	app := &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		Bridge:  bridge,
		Windows: windows,
		Alerts:  usecase.NewHandleAlertUseCase(bridge, windows),
		ctx:     ctx,
	}

	if cfg.Database.Path == "" {
		return nil, errors.New("no database path configured")
	}
	app.db = sqlite.NewLazyDB(cfg.Database.Path)
	app.Recorder = usecase.NewRecordDialogsUseCase(sqlite.NewLazyDialogJournal(app.db))

	if cfg.Dialogs.Journal {
		bridge.AddObserver(app.Recorder)
	}

	return app, nil
}

// WatchConfig applies dialog timeout changes from the config file while a
// script runs.
func (a *App) WatchConfig() {
	if a.Manager == nil {
		return
	}
	log := logging.FromContext(a.ctx)
	a.Manager.OnConfigChange(func(c *config.Config) {
		a.Bridge.SetTimeout(c.Dialogs.Timeout())
		log.Info().Dur("timeout", c.Dialogs.Timeout()).Msg("dialog timeout reloaded")
	})
	if err := a.Manager.Watch(); err != nil {
		log.Debug().Err(err).Msg("config watch unavailable")
	}
}

// PruneJournal drops journal entries older than the configured retention.
func (a *App) PruneJournal() {
	retention := a.Config.Dialogs.JournalRetention()
	if retention <= 0 {
		return
	}
	log := logging.FromContext(a.ctx)
	n, err := a.Recorder.Purge(a.ctx, retention, time.Now())
	if err != nil {
		log.Warn().Err(err).Msg("failed to prune dialog journal")
		return
	}
	if n > 0 {
		log.Info().Int64("removed", n).Msg("pruned dialog journal")
	}
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when the file cannot be read.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, defaultConfig()
	}
	if err := mgr.Load(); err != nil {
		log := logging.NewFromEnv()
		log.Warn().Err(err).Msg("using default configuration")
		return nil, defaultConfig()
	}
	return mgr, mgr.Get()
}

func defaultConfig() *config.Config {
	cfg := config.DefaultConfig()
	if cfg.Database.Path == "" {
		if path, err := config.GetDatabaseFile(); err == nil {
			cfg.Database.Path = path
		}
	}
	return cfg
}
