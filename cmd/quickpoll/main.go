package main

import (
	"context"

	"github.com/lshigami/quickpoll/internal/app"
	"github.com/lshigami/quickpoll/internal/logger"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// @title Quickpoll API
// @version 1.0
// @description Publish questions, collect votes and read results.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	application := fx.New(app.Module)

	if err := application.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	// Wait for a shutdown signal
	sig := <-application.Wait()
	log.Info().Str("signal", sig.Signal.String()).Msg("Application shutting down gracefully...")

	if err := application.Stop(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}
