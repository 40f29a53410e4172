package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig holds environment defaults for the CLI.
type envConfig struct {
	DBPath    string `env:"MPLAN_DB"`
	OutputDir string `env:"MPLAN_OUT" envDefault:"."`
	LogLevel  string `env:"MPLAN_LOG_LEVEL" envDefault:"info"`
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "mortgage-planner.db"
	}
	return home + "/.mortgage-planner/scenarios.db"
}

func main() {
	// A .env next to the binary is a convenience, not a requirement.
	_ = godotenv.Load()

	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "parse environment: %v\n", err)
		os.Exit(1)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath()
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	app := newApp(cfg, logger)
	if err := app.rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// slogAdapter exposes the CLI's slog logger through the engine's Logger
// interface.
type slogAdapter struct {
	l *slog.Logger
}

func (a slogAdapter) Debugf(format string, args ...any) { a.l.Debug(fmt.Sprintf(format, args...)) }
func (a slogAdapter) Infof(format string, args ...any)  { a.l.Info(fmt.Sprintf(format, args...)) }
func (a slogAdapter) Warnf(format string, args ...any)  { a.l.Warn(fmt.Sprintf(format, args...)) }
func (a slogAdapter) Errorf(format string, args ...any) { a.l.Error(fmt.Sprintf(format, args...)) }
