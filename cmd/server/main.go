package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"foodcourt/internal/auth"
	"foodcourt/internal/cache"
	"foodcourt/internal/config"
	"foodcourt/internal/infrastructure/logger"
	"foodcourt/internal/infrastructure/mysql"
	"foodcourt/internal/menu"
	"foodcourt/internal/notify"
	"foodcourt/internal/order"
	"foodcourt/internal/restaurant"
	"foodcourt/internal/server"
	"foodcourt/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	if err := mysql.Migrate(db); err != nil {
		zapLogger.Fatal("running migrations", zap.Error(err))
	}

	tokens := auth.NewTokenManager(cfg.Token.Secret, cfg.Token.TTL())
	responseCache := cache.New(cfg.Cache.Size, cfg.Cache.TTL)

	dispatcher := notify.NewDispatcher(
		notify.NewSMTPSender(cfg.SMTP),
		cfg.Notify.Workers, cfg.Notify.QueueSize,
		zapLogger,
	)

	users := user.NewModule(db, tokens, zapLogger)
	restaurants := restaurant.NewModule(db, responseCache, zapLogger)
	menus := menu.NewModule(db, restaurant.NewMySQLRepository(db), responseCache, zapLogger)
	orders := order.NewModule(db,
		menu.NewMySQLRepository(db),
		restaurant.NewMySQLRepository(db),
		user.NewMySQLRepository(db),
		responseCache, dispatcher,
		cfg.Sweeper.Period, cfg.Sweeper.StallThreshold,
		zapLogger,
	)

	if cfg.Admin.Email != "" {
		if err := users.Service.SeedAdmin(context.Background(), cfg.Admin.Email, cfg.Admin.Password); err != nil {
			zapLogger.Fatal("seeding admin account", zap.Error(err))
		}
	}

	router := server.NewRouter(server.Modules{
		Users:       users,
		Restaurants: restaurants,
		Menus:       menus,
		Orders:      orders,
	}, tokens, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		orders.Sweeper.Run(sweeperCtx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	stopSweeper()
	<-sweeperDone

	// Flushes any queued notifications before exit.
	dispatcher.Close()

	zapLogger.Info("server stopped gracefully")
}
