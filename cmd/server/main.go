package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/adapter"
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/config"
	handler "github.com/Monica-R-Kashyapa/kodnest-auth/internal/handler/http"
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/logger"
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/server"
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/service"
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/session"
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/store"
	"github.com/Monica-R-Kashyapa/kodnest-auth/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("kodnest-auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to user store")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB, db.Driver()); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	users := store.NewUserRepository(db, log)
	services := service.NewServices(users, log)
	sessions := session.NewManager(cfg.App)
	handlers := handler.NewHandler(services, sessions, cfg.App, log)

	// Warn early if the post-login destination is down; logins still work,
	// users just land on a dead page.
	go probeLanding(ctx, cfg.App.LandingURL, cfg.Server.RequestTimeout, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func probeLanding(ctx context.Context, landingURL string, timeout time.Duration, log *logger.Logger) {
	probe, err := adapter.NewLandingProbe(landingURL, timeout, log)
	if err != nil {
		log.Warn().Err(err).Msg("landing url probe not started")
		return
	}
	if err = probe.Check(ctx); err != nil {
		log.Warn().Err(err).Str("url", landingURL).Msg("landing url check failed")
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
