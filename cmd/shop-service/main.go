package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prudhivi99/shop-manager/internal/config"
	"github.com/prudhivi99/shop-manager/internal/db"
	"github.com/prudhivi99/shop-manager/internal/logging"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "shop-service",
	Short: "Inventory, payment and delivery tracking for a single shop",
	Long: `shop-service runs the shop REST API backed by PostgreSQL.

Redis caching, RabbitMQ events and Consul registration are optional and
switched on in configuration.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to shop.yaml config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger shared by every command
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

func dbConfig(c config.Database) db.Config {
	return db.Config{
		Host:     c.Host,
		Port:     c.Port,
		User:     c.User,
		Password: c.Password,
		Name:     c.Name,
		SSLMode:  c.SSLMode,
	}
}
