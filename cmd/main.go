package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"carrent/api"
	"carrent/config"
	"carrent/pkg/bot"
	"carrent/pkg/logger"
	"carrent/pkg/pricing"
	"carrent/service"
	"carrent/storage/postgres"
	"carrent/storage/redis"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Initialize Logger
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	// 3. Catalog storage (Postgres) and snapshot cache (Redis)
	pgStore, err := postgres.New(context.Background(), cfg, log)
	if err != nil {
		log.Error("failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pgStore.Close()

	cache := redis.New(cfg.RedisHost+":"+cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB, cfg.CatalogCacheTTL)
	defer cache.Close()

	// 4. Services (catalog + quote engine)
	svc := service.New(pgStore, cache, pricing.ParseDayCountPolicy(cfg.DayCountPolicy), log)

	// 5. Booking bot (optional, needs a token)
	if cfg.TelegramBotToken != "" {
		b, err := bot.New(&cfg, svc, log)
		if err != nil {
			log.Error("failed to initialize booking bot", logger.Error(err))
			os.Exit(1)
		}
		go b.Start()
	} else {
		log.Warning("TG_BOT_TOKEN not set, booking bot disabled")
	}

	// 6. HTTP API
	go func() {
		if err := api.RunServer(cfg.AppPort, svc, log); err != nil {
			log.Error("http server stopped", logger.Error(err))
			os.Exit(1)
		}
	}()

	log.Info("🚀 carrent backend is running")

	// 7. Graceful shutdown listener
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("shutting down...")
}
