// Package main is the entry point for the monster-maker server
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/monster-maker/internal/config"
	"github.com/KirkDiggler/monster-maker/internal/pkg/logging"
)

var (
	configFile string
	envFiles   []string

	appConfig *config.Config
	closeLog  func() error
)

var rootCmd = &cobra.Command{
	Use:   "monster-maker",
	Short: "Monster Maker composite sprite editor",
	Long: `Monster Maker lets you pick two monsters, tear them into parts and stitch
the parts into a new creature on a 64x64 pixel grid.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if closeLog != nil {
			_ = closeLog()
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, ".env files to load; missing files are skipped")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().String("redis-addr", "", "redis address; empty keeps data in memory")
	rootCmd.PersistentFlags().String("assets-dir", "assets", "asset tree holding monsters/ and parts/")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
}

// loadConfig binds flags into viper, loads the config and installs the
// default logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	for key, flag := range map[string]string{
		"log.level":  "log-level",
		"log.format": "log-format",
		"redis.addr": "redis-addr",
		"assets.dir": "assets-dir",
		"http.addr":  "http-addr",
		"ops.addr":   "ops-addr",
		"static.dir": "static-dir",
	} {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", flag, err)
			}
		}
	}

	cfg, err := config.Load(v, configFile, envFiles...)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	appConfig = cfg
	closeLog = closer.Close
	return nil
}
