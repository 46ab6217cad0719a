// Package main runs the private bank API server.
package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/private-bank/cmd/httpserver"
	"github.com/go-petr/private-bank/internal/middleware"
	"github.com/go-petr/private-bank/pkg/configpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)
	ctx := logger.WithContext(context.Background())

	repo, closeRepo, err := httpserver.OpenRepo(config)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", config.StorageDriver).Msg("cannot open storage")
	}

	defer func() {
		if err := closeRepo(); err != nil {
			logger.Error().Err(err).Msg("cannot close storage")
		}
	}()

	bank, err := httpserver.NewBank(ctx, config, repo)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot load bank")
	}

	gin.SetMode(gin.ReleaseMode)

	server, err := httpserver.New(bank, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Str("driver", config.StorageDriver).Msg("BANK API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
