package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"github.com/JackchrisO/Synapse/internal/app/server/api"
	"github.com/JackchrisO/Synapse/internal/config"
	"github.com/JackchrisO/Synapse/internal/domain/record"
	"github.com/JackchrisO/Synapse/internal/domain/user"
	"github.com/JackchrisO/Synapse/internal/infrastructure/storage/jsonfile"
	"github.com/JackchrisO/Synapse/internal/infrastructure/storage/postgres"
	"github.com/JackchrisO/Synapse/internal/infrastructure/storage/sqlite"
	"github.com/JackchrisO/Synapse/internal/utils/logger"
)

func main() {
	conf := config.NewConfig()
	log := logger.New(conf.Env)

	if err := run(conf, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(conf *config.Config, log *slog.Logger) error {
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	users, records, closeStorage, err := repositories(conf, log)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer closeStorage()

	mux := api.New(conf, users, records, log)

	server := &http.Server{
		Addr:    conf.Server.RunAddress,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			"address", conf.Server.RunAddress,
			"driver", conf.Storage.Driver,
			"bootstrap_enabled", conf.BootstrapEnabled(),
		)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(ctx)
}

func repositories(conf *config.Config, log *slog.Logger) (user.Repository, record.Repository, func(), error) {
	switch conf.Storage.Driver {
	case config.DriverPostgres:
		storage, err := postgres.New(conf)
		if err != nil {
			return nil, nil, nil, err
		}
		return postgres.NewUserRepository(storage.Pool(), log),
			postgres.NewRecordRepository(storage.Pool(), log),
			func() { storage.Close() },
			nil

	case config.DriverSQLite:
		storage, err := sqlite.New(conf.Storage.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		return sqlite.NewUserRepository(storage, log),
			sqlite.NewRecordRepository(storage, log),
			func() { storage.Close() },
			nil

	default:
		storage, err := jsonfile.New(conf.Storage.DataDir, log)
		if err != nil {
			return nil, nil, nil, err
		}
		return jsonfile.NewUserRepository(storage, log),
			jsonfile.NewRecordRepository(storage, log),
			func() {},
			nil
	}
}
