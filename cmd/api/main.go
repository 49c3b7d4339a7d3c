package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mishasvintus/teams_slackbot/internal/config"
	"github.com/mishasvintus/teams_slackbot/internal/handler"
	"github.com/mishasvintus/teams_slackbot/internal/logging"
	"github.com/mishasvintus/teams_slackbot/internal/repository"
	"github.com/mishasvintus/teams_slackbot/internal/repository/team"
	"github.com/mishasvintus/teams_slackbot/internal/repository/user"
	"github.com/mishasvintus/teams_slackbot/internal/router"
	"github.com/mishasvintus/teams_slackbot/internal/service"
)

func main() {
	log := logging.Default()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Configure(&logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	log = logging.Default()

	httpClient := repository.NewHTTPClient(cfg.HTTP.Timeout)

	userRepo := user.New(httpClient, user.Config{
		BaseURL:          cfg.Users.BaseURL,
		BySlackNamesPath: cfg.Users.BySlackNamesPath,
		ByUUIDsPath:      cfg.Users.ByUUIDsPath,
	})
	teamRepo := team.New(httpClient, team.Config{
		BaseURL:        cfg.Teams.BaseURL,
		APIVersion:     cfg.Teams.APIVersion,
		ActivatePath:   cfg.Teams.ActivatePath,
		DeactivatePath: cfg.Teams.DeactivatePath,
		GetPath:        cfg.Teams.GetPath,
	})

	userService := service.NewUserService(userRepo)
	teamService := service.NewTeamService(teamRepo, userService)

	teamHandler := handler.NewTeamHandler(teamService, userService)
	healthHandler := handler.NewHealthHandler()

	r := router.SetupRoutes(teamHandler, healthHandler)

	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
