package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"pollywolly.org/internal/auth"
	"pollywolly.org/internal/config"
	"pollywolly.org/internal/holder"
	"pollywolly.org/internal/ids"
	"pollywolly.org/internal/ledger"
	"pollywolly.org/internal/obs"
	"pollywolly.org/internal/session"
)

var version = "1.0.0"

func main() {
	cfg, err := config.ProcessEnvironmentVariables()
	if err != nil {
		obs.Logger().WithError(err).Fatal("config.ProcessEnvironmentVariables")
	}

	// Log lines go to stderr so they do not interleave with the prompts.
	obs.SetOutput(os.Stderr)
	obs.SetLevel(cfg.LogLevel)
	log := obs.Logger()
	log.WithField("version", version).Info("bankapp starting")

	metrics := obs.NewMetrics()
	metrics.SetBuildInfo(version)

	var metricsSrv *http.Server
	if cfg.MetricsAddr != "" {
		metricsSrv = metrics.Serve(cfg.MetricsAddr)
		log.WithField("addr", cfg.MetricsAddr).Info("metrics listener started")
	}

	store := holder.NewInMemory()
	if cfg.SeedDemo {
		if err := seedDemoBank(context.Background(), store); err != nil {
			log.WithError(err).Fatal("seed demo bank")
		}
	}

	gate := auth.NewGate(store)
	engine := ledger.NewEngine(ledger.SystemClock{}, ids.NewConfirmations())

	sess := session.New(gate, engine, metrics, os.Stdin, os.Stdout)
	if err := sess.Run(context.Background()); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Fatal("session failed")
	}

	if metricsSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsSrv.Shutdown(ctx)
	}
	log.Info("bankapp stopped")
}
