// Command grange-admin runs maintenance tasks against the grange database:
// seeding the admin account, syncing the operation registry and recounting
// shed and pool populations.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mmdatafocus/grange_backend/cache"
	"github.com/mmdatafocus/grange_backend/config"
	"github.com/mmdatafocus/grange_backend/models"
	"github.com/mmdatafocus/grange_backend/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "grange-admin",
	Short:         "Maintenance tasks for the grange backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd.AddCommand(seedAdminCmd, syncOperationsCmd, recountCmd)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openStore connects with the same configuration as the server. The returned
// func closes redis and the database.
func openStore(ctx context.Context) (*models.Store, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger := config.NewLogger(cfg.LogLevel)

	db, err := config.ConnectDatabaseWithRetry(ctx, cfg.Database, logger)
	if err != nil {
		return nil, nil, err
	}
	rdb, err := config.ConnectRedisWithRetry(ctx, cfg.Redis, logger)
	if err != nil {
		return nil, nil, err
	}
	c := cache.New(rdb)
	store := models.NewStore(models.StoreOptions{
		DB:            db,
		Cache:         c,
		Logger:        logger,
		Tokens:        utils.NewTokenIssuer(cfg.Token.Secret, cfg.Token.RefreshSecret, cfg.Token.Lifetime, cfg.Token.RefreshLifetime),
		PermissionTTL: cfg.PermissionCacheTTL,
		PhoneRegion:   cfg.PhoneRegion,
	})
	closeFn := func() {
		_ = c.Close()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if !cfg.SkipMigrations {
		if err := models.MigrateTable(db); err != nil {
			closeFn()
			return nil, nil, err
		}
	}
	logger.WithFields(logrus.Fields{"field": "grange-admin"}).Info("store ready")
	return store, closeFn, nil
}
