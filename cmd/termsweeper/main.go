// Package main is the entry point for termsweeper.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/samdwyer/termsweeper/internal/config"
	"github.com/samdwyer/termsweeper/internal/game"
	"github.com/samdwyer/termsweeper/internal/logging"
	"github.com/samdwyer/termsweeper/internal/telemetry"
)

var configPath string

func init() {
	flag.StringVar(&configPath, "config", "", "YAML config file (default: environment only)")
}

func main() {
	flag.Parse()

	// .env is optional; variables may be set directly.
	envErr := godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		logrus.Fatal(err)
	}

	log, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		logrus.Fatal(err)
	}
	if envErr != nil {
		log.WithError(envErr).Debug(".env file not loaded")
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		logrus.Fatal("termsweeper needs an interactive terminal")
	}

	ctx := context.Background()

	if cfg.Telemetry.Enabled {
		setupOTelEnv(cfg.Telemetry)
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.WithError(err).Warn("telemetry setup failed, running without tracing")
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.WithError(err).Error("telemetry shutdown")
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithField("seed", seed).Info("starting")

	g, err := game.New(seed, log)
	if err != nil {
		logrus.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.WithError(err).Error("game error")
		logrus.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb unless an endpoint is
// already configured.
func setupOTelEnv(t config.Telemetry) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	if headers := t.OTLPHeaders(); headers != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS", headers)
	}
}
