package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/c360studio/roxmodel/config"
	"github.com/c360studio/roxmodel/engine"
)

// app carries the root flag values and the lazily booted engine the
// subcommands share. Booting is deferred so commands like version
// never touch the vocabulary files or the storage directory.
type app struct {
	configPath string
	logLevel   string

	eng *engine.Engine
}

// engine boots the engine on first use and reuses it afterwards.
func (a *app) engine() (*engine.Engine, error) {
	if a.eng != nil {
		return a.eng, nil
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	eng, err := engine.Boot(cfg, logger)
	if err != nil {
		return nil, err
	}
	a.eng = eng
	return eng, nil
}

func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := a.readConfig()
	if err != nil {
		return nil, err
	}

	// The flag outranks every config layer.
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// readConfig loads the explicit --config file when given, otherwise
// the layered defaults (user config, then project roxmodel.yaml).
func (a *app) readConfig() (*config.Config, error) {
	if a.configPath != "" {
		cfg, err := config.LoadFromFile(a.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}
	return config.NewLoader(slog.Default()).Load()
}
