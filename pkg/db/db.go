package db

import (
	"fmt"
	"time"

	"github.com/smallbiznis/console/internal/config"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the configured database, installs the given plugins and applies pool limits.
func Open(cfg config.DocumentStoreConfig, log gormlogger.Interface, plugins ...gorm.Plugin) (*gorm.DB, error) {
	dialector, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialector, &gorm.Config{Logger: log})
	if err != nil {
		return nil, err
	}

	for _, plugin := range plugins {
		if err := conn.Use(plugin); err != nil {
			return nil, fmt.Errorf("gorm plugin %s: %w", plugin.Name(), err)
		}
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	if cfg.DBMaxIdleConn > 0 {
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConn)
	}
	if cfg.DBMaxOpenConn > 0 {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConn)
	}
	if cfg.DBConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetime) * time.Second)
	}

	return conn, nil
}
