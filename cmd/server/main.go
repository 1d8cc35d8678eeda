package main

import (
	"context"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/app"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/cache"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/config"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/db"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/logger"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/server"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/service/discovery"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/service/swipe"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}

	appCtx := app.New(database, redisCache, log, cfg)

	registrars := []server.Registrar{
		discovery.NewRegistrar(appCtx),
		swipe.NewRegistrar(appCtx),
	}

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	addr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	log.Info("starting HTTP server", "addr", addr)

	if err := server.StartHTTPServer(appCtx, registrars...); err != nil {
		log.Error("failed to start HTTP server", "err", err)
	}
}
