package config

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(ctx context.Context, s DatabaseSettings) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch s.Driver {
	case "postgres":
		if s.DSN == "" {
			return nil, fmt.Errorf("DATABASE_DSN required for driver %q", s.Driver)
		}
		dialector = postgres.Open(s.DSN)
	case "sqlite":
		dsn := s.DSN
		if dsn == "" {
			dsn = "overhoor.db"
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", s.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	WithContext(ctx).WithField("driver", s.Driver).Info("database connected")
	return db, nil
}
