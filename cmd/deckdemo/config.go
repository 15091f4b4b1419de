package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type config struct {
	Seed     int64
	Draw     int
	Extra    int
	Discard  int
	Snapshot bool
}

// loadConfig reads defaults from the environment (and an optional .env),
// then lets command-line flags override them.
func loadConfig(fs *flag.FlagSet, args []string) (config, error) {
	_ = godotenv.Load()

	cfg := config{Draw: 2, Extra: 1}
	var err error
	if cfg.Seed, err = envInt64("DECK_SEED", cfg.Seed); err != nil {
		return config{}, err
	}
	if cfg.Draw, err = envInt("DECK_DRAW", cfg.Draw); err != nil {
		return config{}, err
	}
	if cfg.Extra, err = envInt("DECK_EXTRA", cfg.Extra); err != nil {
		return config{}, err
	}
	if cfg.Discard, err = envInt("DECK_DISCARD", cfg.Discard); err != nil {
		return config{}, err
	}

	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed (0 => time-based)")
	fs.IntVar(&cfg.Draw, "draw", cfg.Draw, "cards to draw into the hand")
	fs.IntVar(&cfg.Extra, "extra", cfg.Extra, "cards to draw afterwards and add to the hand")
	fs.IntVar(&cfg.Discard, "discard", cfg.Discard, "cards to burn before drawing")
	fs.BoolVar(&cfg.Snapshot, "snapshot", false, "print the hand as a hex protobuf snapshot")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	if c.Draw < 0 || c.Extra < 0 {
		return fmt.Errorf("draw counts must be >= 0: draw=%d extra=%d", c.Draw, c.Extra)
	}
	if c.Discard < 0 {
		return fmt.Errorf("discard must be >= 0")
	}
	return nil
}

func envInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envInt64(key string, fallback int64) (int64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
