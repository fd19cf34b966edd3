package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"parceltrack/cmd"
	"parceltrack/internal/adapters/out/postgres/accountrepo"
	"parceltrack/internal/adapters/out/postgres/carrierrepo"
	"parceltrack/internal/adapters/out/postgres/eventrepo"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/returnrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	config := getConfigs()

	if err := ensureDatabaseExists(config); err != nil {
		logger.Error("Failed to ensure database exists", "error", err)
		os.Exit(1)
	}

	gormDB, err := openGorm(config)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = migrate(gormDB); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(config, gormDB)

	if config.SeedCarriers {
		if err = cmd.SeedCarriers(context.Background(), &root, logger); err != nil {
			logger.Error("Failed to seed carriers", "error", err)
			os.Exit(1)
		}
	}

	if config.SlaJobEnabled {
		jobManager := root.CreateJobManager(logger)
		if err = jobManager.StartAll(); err != nil {
			logger.Error("Failed to start jobs", "error", err)
			os.Exit(1)
		}
		defer jobManager.StopAll()
	}

	e := echo.New()
	e.Use(middleware.Recover())
	root.CreateHTTPServer(logger).RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}

func getConfigs() cmd.Config {
	// Missing .env is fine; the environment itself may carry everything.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:             envOrDefault("HTTP_PORT", "8080"),
		DBHost:               envOrDefault("DB_HOST", "localhost"),
		DBPort:               envOrDefault("DB_PORT", "5432"),
		DBUser:               envOrDefault("DB_USER", "postgres"),
		DBPassword:           envOrDefault("DB_PASSWORD", "postgres"),
		DBName:               envOrDefault("DB_NAME", "parceltrack"),
		DBSslMode:            envOrDefault("DB_SSLMODE", "disable"),
		CronSecret:           os.Getenv("CRON_SECRET"),
		SlaJobEnabled:        envBool("SLA_JOB_ENABLED", true),
		SlaJobSchedule:       os.Getenv("SLA_JOB_SCHEDULE"),
		CarrierLookupTimeout: envDuration("CARRIER_LOOKUP_TIMEOUT", 10*time.Second),
		SeedCarriers:         envBool("SEED_CARRIERS", false),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// ensureDatabaseExists creates the target database when missing, connecting
// to the maintenance database first. CREATE DATABASE cannot run inside a
// transaction, so this goes through database/sql directly.
func ensureDatabaseExists(config cmd.Config) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", config.DBName).Scan(&exists)
	if err != nil {
		return err
	}

	if !exists {
		_, err = db.Exec("CREATE DATABASE " + pq.QuoteIdentifier(config.DBName))
		if err != nil {
			return err
		}
	}

	return nil
}

func openGorm(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&carrierrepo.CarrierDTO{},
		&accountrepo.AccountDTO{},
		&parcelrepo.ParcelDTO{},
		&eventrepo.EventDTO{},
		&returnrepo.ReturnIntakeDTO{},
	)
}
