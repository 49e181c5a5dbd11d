package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const EnvPrefix = ""

type Config struct {
	App AppConfig
	DB  DBConfig
}

type AppConfig struct {
	Port     string `envconfig:"WAREHOUSE_APP_PORT" default:"8080"`
	LogLevel string `envconfig:"WAREHOUSE_LOG_LEVEL" default:"info"`
}

type DBConfig struct {
	Host     string `envconfig:"WAREHOUSE_DB_HOST" default:"localhost"`
	Port     int    `envconfig:"WAREHOUSE_DB_PORT" default:"5432"`
	User     string `envconfig:"WAREHOUSE_DB_USER" default:"postgres"`
	Password string `envconfig:"WAREHOUSE_DB_PASSWORD"`
	Name     string `envconfig:"WAREHOUSE_DB_NAME" default:"warehouse"`
	SSLMode  string `envconfig:"WAREHOUSE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"WAREHOUSE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"WAREHOUSE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"WAREHOUSE_DB_CONN_MAX_LIFETIME" default:"1h"`
}

func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// InitDB opens the PostgreSQL connection with pooled settings.
func InitDB(cfg DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// NewLogger builds the service-wide structured logger.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", "warehouse-ledger").
		Logger().
		Level(lvl)
}
