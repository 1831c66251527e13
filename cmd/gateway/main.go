package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codearena/internal/api"
	"codearena/internal/app/service"
	"codearena/internal/common/security"
	"codearena/internal/platform/cache"
	"codearena/internal/platform/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// 1. Load Configuration
	config.Load()
	log.Info().Msg("configuration loaded")

	// 2. Initialize JWT
	security.InitJWT()
	log.Info().Msg("JWT initialized")

	// 3. Initialize the leaderboard cache (optional)
	if cache.Connect() {
		defer cache.Close()
	}

	// 4. Initialize Services
	authService := service.NewAuthService(config.AppConfig.BackendURL)
	proxyService := service.NewProxyService(config.AppConfig.BackendURL)
	leaderboardService := service.NewLeaderboardService(
		proxyService,
		cache.RDB,
		time.Duration(config.AppConfig.LeaderboardCacheSeconds)*time.Second,
	)

	// 5. Initialize Router & HTTP Server
	router := api.NewRouter(authService, proxyService, leaderboardService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 6. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", config.AppConfig.APIPort).Str("backend", config.AppConfig.BackendURL).Msg("gateway starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Str("port", config.AppConfig.APIPort).Msg("could not listen")
		}
	}()

	<-stop // Wait for interrupt signal

	log.Info().Msg("shutting down gateway...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("gateway shutdown failed")
	}

	log.Info().Msg("gateway stopped gracefully")
}
