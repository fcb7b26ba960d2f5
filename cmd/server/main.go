package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"planboard/internal/clients/docstore"
	"planboard/internal/config"
	"planboard/internal/logger"

	"github.com/grafana/pyroscope-go"
	_ "go.uber.org/automaxprocs" // respect container CPU quotas
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Create bootstrap logger for early errors
	bootstrapLog := log.New(os.Stderr, "bootstrap: ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		bootstrapLog.Printf("config load failed: %v", err)
		os.Exit(1)
	}

	logg, err := logger.Init(cfg)
	if err != nil {
		bootstrapLog.Printf("logger init failed: %v", err)
		os.Exit(1)
	}

	if cfg.ProfilingEnabled {
		runtime.SetMutexProfileFraction(5)
		runtime.SetBlockProfileRate(5)
		if _, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "planboard",
			ServerAddress:   cfg.PyroscopeAddress,
			Logger:          nil,
		}); err != nil {
			logg.Warn("pyroscope start failed, continuing without profiling", "err", err)
		} else {
			logg.Info("continuous profiling enabled", "address", cfg.PyroscopeAddress)
		}
	}

	if cfg.StorageDriver == config.DriverMongo {
		_, db, err := docstore.InitMongo(ctx, cfg, logg)
		if err != nil {
			logg.Error("mongo init", "err", err)
			os.Exit(1)
		}
		logg.Info("connected to mongo", "db", db.Name())
	}

	store, err := docstore.Open(cfg, logg)
	if err != nil {
		logg.Error("docstore open", "err", err)
		os.Exit(1)
	}

	logg.Info("starting Planboard", "port", cfg.AppPort, "driver", cfg.StorageDriver)

	// Setup router and start server
	app := setupRouter(ctx, cfg, store)
	portStr := fmt.Sprintf(":%d", cfg.AppPort)

	g.Go(func() error {
		err := app.Listen(portStr)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	// Graceful shutdown
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
		defer cancel()

		if err := app.Shutdown(); err != nil {
			return err
		}
		return docstore.ShutdownMongo(shutdownCtx)
	})

	// Wait and exit
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error("fatal", "err", err)
		os.Exit(1)
	}
	logg.Info("graceful shutdown complete")
}
