package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/pflow-xyz/go-vesting/eventsource"
)

type config struct {
	// StorePath is the SQLite event store location. ":memory:" gives an
	// ephemeral store.
	StorePath string `env:"VESTCTL_STORE" envDefault:"vestctl.db"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func openStore() (eventsource.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	store, err := eventsource.NewSQLiteStore(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open event store: %w", err)
	}
	return store, nil
}
