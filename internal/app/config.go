package app

import env "github.com/caarlos0/env/v11"

// Config holds runtime wiring options for building the app.
type Config struct {
	// Home is the preference directory, e.g. $HOME/.dogyears.
	Home string `env:"DOGYEARS_HOME"`

	// Theme seeds the default theme for runs where none is persisted yet.
	Theme string `env:"DOGYEARS_THEME"`

	// Debug enables verbose development logging.
	Debug bool `env:"DOGYEARS_DEBUG"`
}

// FromEnv parses a Config from the process environment. Flags may
// override individual fields afterwards.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
