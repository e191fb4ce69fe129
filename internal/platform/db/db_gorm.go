// Package db opens the gorm connection pool used by every repository.
package db

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	retryInterval = 3 * time.Second
)

// Config describes how to reach the database.
type Config struct {
	Driver string

	// URL wins over the discrete settings when set.
	URL      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string

	SQLitePath string

	ConnectTimeout time.Duration
	RunMigrations  bool
	MaxOpenConns   int
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv reads DB_DRIVER, DATABASE_URL and the PG* variables.
func LoadConfigFromEnv() Config {
	timeout, err := time.ParseDuration(envOr("DB_CONNECT_TIMEOUT", "60s"))
	if err != nil {
		timeout = 60 * time.Second
	}
	return Config{
		Driver:         strings.ToLower(envOr("DB_DRIVER", DriverPostgres)),
		URL:            os.Getenv("DATABASE_URL"),
		Host:           envOr("PGHOST", "localhost"),
		Port:           envOr("PGPORT", "5432"),
		Name:           os.Getenv("PGDATABASE"),
		User:           os.Getenv("PGUSER"),
		Password:       os.Getenv("PGPASSWORD"),
		SSLMode:        envOr("PGSSLMODE", "prefer"),
		SQLitePath:     envOr("SQLITE_PATH", "portfolio.db"),
		ConnectTimeout: timeout,
		RunMigrations:  os.Getenv("RUN_MIGRATIONS") == "true",
		MaxOpenConns:   20,
	}
}

// BuildDSN returns the connection string for cfg.Driver.
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverSQLite {
		return cfg.SQLitePath
	}
	if cfg.URL != "" {
		return cfg.URL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   cfg.Host + ":" + cfg.Port,
		Path:   "/" + cfg.Name,
	}
	if cfg.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {cfg.SSLMode}}.Encode()
	}
	return u.String()
}

// ConnectWithRetry calls opener until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("database connect failed after %s: %w", timeout, err)
		}
		slog.Warn("database connect failed, retrying", "error", err, "retry_in", min(retryInterval, remaining))
		time.Sleep(min(retryInterval, remaining))
	}
}

// OpenerFor returns the gorm opener for driver.
func OpenerFor(driver string) (Opener, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
	switch driver {
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(postgres.Open(dsn), gormCfg) }, nil
	case DriverSQLite:
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(sqlite.Open(dsn), gormCfg) }, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// OpenDB connects, configures the pool and migrates models when asked to.
// SQLite databases are always migrated.
func OpenDB(cfg Config, models ...any) (*gorm.DB, error) {
	opener, err := OpenerFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	return openWith(cfg, opener, models...)
}

// openWith is OpenDB with the opener supplied. The pool is closed on every
// error after a successful connect.
func openWith(cfg Config, opener Opener, models ...any) (*gorm.DB, error) {
	db, err := ConnectWithRetry(BuildDSN(cfg), cfg.ConnectTimeout, opener)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		if c, ok := db.ConnPool.(io.Closer); ok {
			_ = c.Close()
		}
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.Driver == DriverSQLite {
		// one writer at a time
		sqlDB.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}

	if cfg.RunMigrations || cfg.Driver == DriverSQLite {
		if err := db.AutoMigrate(models...); err != nil {
			if cerr := sqlDB.Close(); cerr != nil {
				slog.Warn("failed to close database after migration error", "error", cerr)
			}
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
		slog.Info("database migrated", "driver", cfg.Driver, "models", len(models))
	}

	slog.Info("database connection successful", "driver", cfg.Driver)
	return db, nil
}

// Close releases the pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
