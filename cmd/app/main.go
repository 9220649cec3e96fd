package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodfast/cmd"
	"foodfast/internal/adapters/out/jsonstore"
	"foodfast/internal/adapters/out/postgres"
	"foodfast/internal/adapters/out/postgres/customerrepo"
	"foodfast/internal/adapters/out/postgres/dronerepo"
	"foodfast/internal/adapters/out/postgres/orderrepo"
	"foodfast/internal/adapters/out/postgres/restaurantrepo"
	"foodfast/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config := getConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	uowFactory := createUnitOfWorkFactory(config)
	app := cmd.NewCompositionRoot(config, uowFactory, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, config.HTTPPort, logger)
}

func getConfig() cmd.Config {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:      envOrDefault("HTTP_PORT", "3000"),
		StorageDriver: envOrDefault("STORAGE_DRIVER", "file"),
		DataDir:       envOrDefault("DATA_DIR", "data"),
		DBHost:        envOrDefault("DB_HOST", "localhost"),
		DBPort:        envOrDefault("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBSslMode:     envOrDefault("DB_SSLMODE", "disable"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func createUnitOfWorkFactory(config cmd.Config) ports.UnitOfWorkFactory {
	switch config.StorageDriver {
	case "file":
		store, err := jsonstore.NewStore(config.DataDir)
		if err != nil {
			log.Fatalf("Failed to open JSON store: %v", err)
		}
		return jsonstore.NewFileUnitOfWorkFactory(store)

	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

		db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}

		err = db.AutoMigrate(
			&orderrepo.OrderDTO{},
			&orderrepo.OrderLineDTO{},
			&dronerepo.DroneDTO{},
			&restaurantrepo.RestaurantDTO{},
			&restaurantrepo.MenuItemDTO{},
			&customerrepo.CustomerDTO{},
		)
		if err != nil {
			log.Fatalf("Failed to migrate database schema: %v", err)
		}

		return postgres.NewGormUnitOfWorkFactory(db)

	default:
		log.Fatalf("Unknown STORAGE_DRIVER %q (want file or postgres)", config.StorageDriver)
		return nil
	}
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	server := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%s", port),
		Handler: app.CreateHTTPServer().Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server listening", "port", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
