package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ukaji3/skillsheet-go/internal/config"
	"github.com/ukaji3/skillsheet-go/pkg/skillsheet"
)

// loadConfig resolves the config path from the flag or the environment,
// after loading .env.
func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	path := configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	return config.Load(path)
}

func setupLogger(cfg *config.Config) {
	level, err := cfg.LogLevel()
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.Log.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func exportOptions(cfg *config.Config) skillsheet.Options {
	opts := skillsheet.DefaultOptions()
	if cfg.Export.FontFamily != "" {
		opts.FontFamily = cfg.Export.FontFamily
	}
	return opts
}
