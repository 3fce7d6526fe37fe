package main

import (
	"fmt"

	"github.com/MKhiriev/go-access-keeper/internal/client"
	"github.com/MKhiriev/go-access-keeper/internal/config"
	"github.com/MKhiriev/go-access-keeper/internal/logger"
	"github.com/MKhiriev/go-access-keeper/internal/service"
	"github.com/MKhiriev/go-access-keeper/internal/store"
	"github.com/MKhiriev/go-access-keeper/internal/tui"
	"github.com/MKhiriev/go-access-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("access-keeper").Fatal().Err(err).Msg("error getting configs")
	}

	log, closer := logger.NewClientLogger("access-keeper", cfg.Client.LogFile)
	defer closer.Close()

	log.Debug().Any("app", cfg.App).Any("credentials", cfg.Credentials).Msg("received configs")

	storages := store.NewStorages(log)
	services := service.NewServices(storages, *cfg, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	var app client.Client
	app, err = client.NewApp(ui, services.Registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
