package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/lateness-tracker/internal/cache"
	"github.com/MKhiriev/lateness-tracker/internal/config"
	"github.com/MKhiriev/lateness-tracker/internal/handler"
	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/internal/server"
	"github.com/MKhiriev/lateness-tracker/internal/service"
	"github.com/MKhiriev/lateness-tracker/internal/store"
	"github.com/MKhiriev/lateness-tracker/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("lateness-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if buildVersion != "N/A" && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("static_dir", cfg.Server.StaticDir).
		Bool("cache", cfg.Storage.Cache.RedisAddress != "").
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer closeWithLog(log, "storages", storages.Close)

	historyCache := cache.New(cfg.Storage.Cache)
	defer closeWithLog(log, "cache", historyCache.Close)

	services, err := service.NewServices(storages, historyCache, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers()
	if handlers.GRPC != nil {
		background = workers.NewWorkers(workers.NewHealthWorker(
			cfg.Workers.HealthCheckInterval,
			handlers.GRPC,
			log,
			workers.Probe{Name: "database", Target: storages},
			workers.Probe{Name: "cache", Target: historyCache},
		))
	}
	background.Run(ctx)

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}

	stop()
	background.Wait()
}

func closeWithLog(log *logger.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Err(err).Str("resource", name).Msg("error closing resource")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
