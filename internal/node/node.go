// Copyright 2026 Hedera Mirror Node Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package node wires the mirror ingestion pipeline together: database,
// event bus, importer, and the metrics listener.
package node

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ndacyayisenga-droid/hedera-mirror-node/database"
	"github.com/Ndacyayisenga-droid/hedera-mirror-node/event"
	"github.com/Ndacyayisenga-droid/hedera-mirror-node/importer"
	"github.com/Ndacyayisenga-droid/hedera-mirror-node/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// pollInterval is how often the record directory is rescanned for new
// files while serving
const pollInterval = 10 * time.Second

type pipeline struct {
	db       *database.Database
	eventBus *event.EventBus
	manager  *importer.Manager
}

func newPipeline(
	cfg *config.Config,
	logger *slog.Logger,
	promRegistry prometheus.Registerer,
) (*pipeline, error) {
	db, err := database.New(&database.Config{
		Logger:       logger,
		DataDir:      cfg.DataDir,
		PromRegistry: promRegistry,
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	eventBus := event.NewEventBus(promRegistry)
	imp, err := importer.New(importer.Config{
		Logger:                  logger,
		Database:                db,
		EventBus:                eventBus,
		PromRegistry:            promRegistry,
		PersistTransfers:        cfg.PersistTransfers,
		PersistClaims:           cfg.PersistClaims,
		PersistTransactionBytes: cfg.PersistTransactionBytes,
		MaxKeyDepth:             cfg.MaxKeyDepth,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating importer: %w", err)
	}
	return &pipeline{
		db:       db,
		eventBus: eventBus,
		manager:  importer.NewManager(imp, cfg.Workers, cfg.BatchSize),
	}, nil
}

func (p *pipeline) stop() error {
	p.eventBus.Stop()
	return p.db.Close()
}

// Run serves continuous ingestion: the record directory is rescanned on
// an interval and any new files are verified and applied in chain order.
// Runs until a signal arrives or a file fails integrity checks.
func Run(cfg *config.Config, logger *slog.Logger) error {
	logger.Debug(fmt.Sprintf("config: %+v", cfg), "component", "node")

	shutdownTimeout := 30 * time.Second
	if cfg.ShutdownTimeout != "" {
		var err error
		shutdownTimeout, err = time.ParseDuration(cfg.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("invalid shutdown timeout: %w", err)
		}
	}

	p, err := newPipeline(cfg, logger, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	// Metrics listener
	http.Handle("/metrics", promhttp.Handler())
	logger.Info(
		"serving prometheus metrics on "+fmt.Sprintf(
			"%s:%d",
			cfg.BindAddr,
			cfg.MetricsPort,
		),
		"component",
		"node",
	)
	metricsServer := &http.Server{
		Addr: fmt.Sprintf(
			"%s:%d",
			cfg.BindAddr,
			cfg.MetricsPort,
		),
		ReadHeaderTimeout: 60 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			logger.Error(
				fmt.Sprintf("failed to start metrics listener: %s", err),
				"component", "node",
			)
			os.Exit(1)
		}
	}()

	// Wait for interrupt/termination signal
	signalCtx, signalCtxStop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer signalCtxStop()

	// Run ingestion loop in goroutine
	errChan := make(chan error, 1)
	go func() {
		err := ingestLoop(signalCtx, p, cfg.RecordDir, logger)
		select {
		case errChan <- err:
		case <-signalCtx.Done():
		}
	}()

	shutdown := func() error {
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			shutdownTimeout,
		)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", "error", err)
		}
		return p.stop()
	}

	select {
	case <-signalCtx.Done():
		logger.Info("signal received, initiating graceful shutdown")
		if err := shutdown(); err != nil {
			logger.Error("shutdown errors occurred", "error", err)
			return err
		}
		logger.Info("shutdown complete")
		return nil

	case err := <-errChan:
		signalCtxStop()
		if stopErr := shutdown(); stopErr != nil {
			logger.Error(
				"shutdown errors occurred during error cleanup",
				"error",
				stopErr,
			)
		}
		if err != nil {
			logger.Error("ingestion error", "error", err)
		}
		return err
	}
}

func ingestLoop(
	ctx context.Context,
	p *pipeline,
	recordDir string,
	logger *slog.Logger,
) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		applied, err := p.manager.ImportDir(ctx, recordDir)
		if err != nil {
			return err
		}
		if applied > 0 {
			logger.Info(
				"applied new record files",
				"component", "node",
				"count", applied,
			)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Load performs a one-shot batch import of a record file directory and
// exits. Used for backfill and for replaying a stream from scratch.
func Load(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	recordDir string,
) error {
	p, err := newPipeline(cfg, logger, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	defer func() {
		if err := p.stop(); err != nil {
			logger.Error("shutdown errors occurred", "error", err)
		}
	}()

	start := time.Now()
	applied, err := p.manager.ImportDir(ctx, recordDir)
	if err != nil {
		return fmt.Errorf(
			"import failed after %d applied files: %w",
			applied,
			err,
		)
	}
	logger.Info(
		"import complete",
		"component", "node",
		"files", applied,
		"elapsed", time.Since(start).String(),
	)
	return nil
}
