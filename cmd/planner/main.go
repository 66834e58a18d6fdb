package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-study-planner/internal/client"
	"github.com/MKhiriev/go-study-planner/internal/config"
	"github.com/MKhiriev/go-study-planner/internal/logger"
	"github.com/MKhiriev/go-study-planner/internal/service"
	"github.com/MKhiriev/go-study-planner/internal/store"
	"github.com/MKhiriev/go-study-planner/internal/tui"
	"github.com/MKhiriev/go-study-planner/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("study-planner", cfg.LogFile)

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storage")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("close storage")
		}
	}()

	services := service.NewClientServices(storages, cfg, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(log.WithContext(context.Background()), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}
