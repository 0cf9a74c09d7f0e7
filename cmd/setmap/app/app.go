// Package app provides the application context and dependency management
// for the setmap CLI. It centralizes configuration loading, logger setup,
// and lazy construction of the setmap instance.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/setmap"
	"github.com/agentstation/setmap/pkg/errors"
)

// App represents the setmap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Setmap instance (lazy-initialized, singleton)
	mu     sync.Mutex
	setmap setmap.Setmap
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Setmap returns the setmap instance, creating it lazily if needed.
func (a *App) Setmap() (setmap.Setmap, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.setmap != nil {
		return a.setmap, nil
	}

	sm, err := setmap.New(a.buildSetmapOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "setmap", "", err)
	}

	a.setmap = sm
	return sm, nil
}

// buildSetmapOptions constructs setmap options from the app configuration.
func (a *App) buildSetmapOptions() []setmap.Option {
	opts := []setmap.Option{
		setmap.WithLogger(a.logger),
	}

	if len(a.config.Generations) > 0 {
		opts = append(opts, setmap.WithGenerations(a.config.Generations...))
	}
	if a.config.SetsURL != "" {
		opts = append(opts, setmap.WithSetsURL(a.config.SetsURL))
	}
	if a.config.StatsURL != "" {
		opts = append(opts, setmap.WithStatsURL(a.config.StatsURL))
	}
	if a.config.Timeout > 0 {
		opts = append(opts, setmap.WithTimeout(a.config.Timeout))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithSetmap sets a custom setmap instance (useful for testing).
func WithSetmap(sm setmap.Setmap) Option {
	return func(a *App) error {
		a.setmap = sm
		return nil
	}
}
