package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/konstrukt-app/konstrukt-be/internal/adapter"
	"github.com/konstrukt-app/konstrukt-be/internal/config"
	"github.com/konstrukt-app/konstrukt-be/internal/handler"
	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/server"
	"github.com/konstrukt-app/konstrukt-be/internal/service"
	"github.com/konstrukt-app/konstrukt-be/internal/store"
	"github.com/konstrukt-app/konstrukt-be/internal/workers"
	"github.com/konstrukt-app/konstrukt-be/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	log := logger.NewLogger("konstrukt-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.App.BotToken == "" {
		// not fatal: every credential check fails closed without it, and
		// local setups run the admin API against seeded tokens only
		log.Error().Msg("BOT_TOKEN is not set: webhook and initData verification are disabled")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages, err := store.NewStorages(db, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	telegram := adapter.NewTelegramBotAPI(adapter.TelegramConfig{
		APIURL:   cfg.Adapter.TelegramAPIURL,
		BotToken: cfg.App.BotToken,
		Timeout:  cfg.Adapter.RequestTimeout,
	})

	services := service.NewServices(storages, telegram, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	workers.NewWorkers(services, cfg.Workers, log).Run()

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
