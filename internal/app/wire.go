package app

import (
	"errors"
	"os"

	"go.uber.org/zap"

	"dogyears/internal/domain"
	"dogyears/internal/services/calc"
	"dogyears/internal/services/restore"
	"dogyears/internal/services/theme"
	"dogyears/internal/store"
)

// Wire bundles the store, logger and services for the front ends.
type Wire struct {
	Store      domain.PreferenceStore
	Calculator *calc.Service
	Themes     *theme.Service
	Restorer   *restore.Service
	Log        *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.Home == "" {
		return nil, errors.New("preference directory required")
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	log, err := newLogger(cfg.Debug)
	if err != nil {
		return nil, err
	}

	prefs := store.NewFileStore(cfg.Home)
	themeSvc := theme.New(prefs, log)

	return &Wire{
		Store:      prefs,
		Calculator: calc.New(prefs, log),
		Themes:     themeSvc,
		Restorer:   restore.New(prefs, themeSvc, log, domain.NormalizeTheme(cfg.Theme)),
		Log:        log,
	}, nil
}

// Close flushes buffered log entries.
func (w *Wire) Close() {
	_ = w.Log.Sync()
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
