package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "fitclub/docs"
	"fitclub/internal/availability"
	"fitclub/internal/config"
	"fitclub/internal/db"
	"fitclub/internal/groupclass"
	"fitclub/internal/keylock"
	"fitclub/internal/logger"
	"fitclub/internal/memstore"
	"fitclub/internal/registration"
	"fitclub/internal/room"
	"fitclub/internal/server"

	"github.com/redis/go-redis/v9"
)

// @title FitClub API
// @version 1.0
// @description Scheduling API for a fitness club: trainer availability, class bookings and member registrations.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	logger.Info("Starting FitClub scheduler")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.InitWithLevel(cfg.LogLevel)

	repos, closeStore, err := openStore(cfg)
	if err != nil {
		logger.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer closeStore()

	srv := server.New(repos, cfg)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

func openStore(cfg *config.Config) (server.Repositories, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		if cfg.LockBackend == config.LockBackendRedis {
			logger.Warn("LOCK_BACKEND=redis is ignored by the memory store")
		}
		store := memstore.New(cfg.DBTimeout)
		logger.Info("Using in-memory store")
		return server.Repositories{
			Name:          config.StoreDriverMemory,
			Rooms:         store.Rooms(),
			Availability:  store.Availability(),
			Classes:       store.Classes(),
			Registrations: store.Registrations(),
		}, func() {}, nil
	}

	logger.Info("Connecting to database...", "driver", cfg.DBDriver)
	database, err := db.Connect(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return server.Repositories{}, nil, err
	}
	closers := []io.Closer{database}
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i].Close(); err != nil {
				logger.Error("Failed to close resource", "error", err)
			}
		}
	}
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		closeAll()
		return server.Repositories{}, nil, err
	}
	logger.Info("Migrations completed")

	var locks keylock.Locker
	if cfg.LockBackend == config.LockBackendRedis {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		closers = append(closers, client)

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			closeAll()
			return server.Repositories{}, nil, err
		}
		locks = keylock.NewRedis(client, cfg.LockTTL)
		logger.Info("Using Redis conflict-domain locks", "addr", cfg.RedisAddr, "ttl", cfg.LockTTL)
	} else {
		logger.Info("Using Postgres advisory locks")
	}

	runner := db.NewTxRunner(database, locks, cfg.DBTimeout)

	return server.Repositories{
		Name:          config.StoreDriverPostgres,
		Rooms:         room.NewRepository(database),
		Availability:  availability.NewRepository(database, runner),
		Classes:       groupclass.NewRepository(database, runner),
		Registrations: registration.NewRepository(database, runner),
	}, closeAll, nil
}
