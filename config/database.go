package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// DSN builds the mysql dsn. A host starting with "/cloudsql/" is dialed as a
// unix socket.
func (c DatabaseConfig) DSN() string {
	network := "tcp"
	address := fmt.Sprintf("%s:%s", c.Host, c.Port)
	if strings.HasPrefix(c.Host, "/cloudsql/") {
		network = "unix"
		address = c.Host
	}
	return fmt.Sprintf("%s:%s@%s(%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		c.User,
		c.Password,
		network,
		address,
		c.Name,
	)
}

// ConnectDatabaseWithRetry keeps dialing with exponential backoff until the
// database answers or ctx is done.
func ConnectDatabaseWithRetry(ctx context.Context, cfg DatabaseConfig, logg *logrus.Logger) (*gorm.DB, error) {
	var attempt int
	for {
		attempt++
		db, err := gorm.Open(mysql.Open(cfg.DSN()), initConfig())
		if err == nil {
			if sqlDB, derr := db.DB(); derr == nil && sqlDB != nil {
				if cfg.MaxOpenConns > 0 {
					sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
				}
				if cfg.MaxIdleConns >= 0 {
					sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
				}
				if cfg.ConnMaxLifetime > 0 {
					sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
				}
				if cfg.ConnMaxIdleTime > 0 {
					sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
				}
			}
			if pluginErr := db.Use(otelgorm.NewPlugin()); pluginErr != nil {
				logg.WithField("field", "database").Warn("failed to install otelgorm plugin: " + pluginErr.Error())
			}
			logg.WithFields(logrus.Fields{"field": "database", "attempt": attempt}).Info("connected to database")
			return db, nil
		}

		sleep := backoff(attempt)
		logg.WithFields(logrus.Fields{
			"field":   "database",
			"attempt": attempt,
		}).Warn("failed to connect database; retrying in " + sleep.String() + ": " + err.Error())
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(sleep):
		}
	}
}

func backoff(attempt int) time.Duration {
	sleep := time.Second * time.Duration(1<<min(attempt, 5))
	if sleep > 30*time.Second {
		sleep = 30 * time.Second
	}
	return sleep
}

func initConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         initLog(),
		NamingStrategy: schema.NamingStrategy{},
		TranslateError: true,
	}
}

func initLog() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			Colorful:                  false,
			LogLevel:                  logger.Error,
			SlowThreshold:             time.Second,
			IgnoreRecordNotFoundError: true,
		},
	)
}
