package db

import (
	"fmt"
	"time"

	"github.com/bizplatform/pmcore/internal/config"
	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// New opens the database selected by cfg.Database.Driver.
func New(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "", DriverPostgres:
		dialector = postgres.Open(cfg.Database.DSN)
	case DriverSQLite:
		dialector = sqlite.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	gcfg := &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	}
	if cfg.App.Env == "release" {
		gcfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	d, err := gorm.Open(dialector, gcfg)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Database.Driver, err)
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Database.Driver == DriverSQLite {
		// a single connection keeps :memory: databases shared and serializes writers
		sqlDB.SetMaxOpenConns(1)
	} else {
		if cfg.Database.MaxOpen > 0 {
			sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
		}
		if cfg.Database.MaxIdle > 0 {
			sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
		}
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
	return d, nil
}

// Migrate creates or updates every table.
func Migrate(d *gorm.DB) error {
	return d.AutoMigrate(model.All()...)
}

// RegisterOpenTelemetryPlugin adds query spans. Call it after the tracer provider is set.
func RegisterOpenTelemetryPlugin(d *gorm.DB) error {
	return d.Use(tracing.NewPlugin())
}
