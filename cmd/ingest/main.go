package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/cricket-ingest/internal/app"
	"github.com/riskibarqy/cricket-ingest/internal/config"
	"github.com/riskibarqy/cricket-ingest/internal/observability"
	"github.com/riskibarqy/cricket-ingest/internal/platform/logging"
	"github.com/riskibarqy/cricket-ingest/internal/usecase"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitNoFiles = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	uptraceShutdown, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return exitFailed
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := uptraceShutdown(shutdownCtx); err != nil {
			logger.Error("shutdown uptrace", "error", err)
		}
	}()

	pyroscopeStop, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		return exitFailed
	}
	defer func() {
		if err := pyroscopeStop(); err != nil {
			logger.Error("stop pyroscope", "error", err)
		}
	}()

	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		logger.Error("start pprof server", "error", err)
		return exitFailed
	}
	defer func() {
		if err := observability.StopPprofServer(pprofSrv, logger, 5*time.Second); err != nil {
			logger.Error("stop pprof server", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.NewIngestApp(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return exitFailed
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Error("close app", "error", err)
		}
	}()

	result, err := application.Ingest.RunBatch(ctx, cfg.SourceDir)
	if err != nil {
		if errors.Is(err, usecase.ErrNoFiles) {
			logger.Error("no scorecard files", "source_dir", cfg.SourceDir)
			return exitNoFiles
		}
		logger.Error("batch run failed", "error", err)
		return exitFailed
	}

	fmt.Print(usecase.RenderBatchReport(result))

	if result.Failed > 0 {
		return exitFailed
	}
	return exitOK
}
