// Package main is the entry point for the nba-salary application
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/myusername/nba-salary-predictor/internal/cache"
	"github.com/myusername/nba-salary-predictor/internal/config"
	"github.com/myusername/nba-salary-predictor/pkg/predictor"
	"github.com/myusername/nba-salary-predictor/pkg/salary"
	"github.com/myusername/nba-salary-predictor/pkg/scraper"
)

// Version is set during build using ldflags
var (
	version = "dev"
)

var flags struct {
	configPath string
	baseURL    string
	modelPath  string
	redisAddr  string
	timeout    time.Duration
}

var rootCmd = &cobra.Command{
	Use:           "nba-salary",
	Short:         "Predict an NBA player's salary from their basketball-reference season statistics.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "nba-salary.json5", "Config file (a .local variant next to it overrides it)")
	pf.StringVar(&flags.baseURL, "base-url", "", "Statistics site base URL")
	pf.StringVar(&flags.modelPath, "model", "", "Path to the JSON5 salary model")
	pf.StringVar(&flags.redisAddr, "redis-addr", "", "Redis address for the page cache (empty disables caching)")
	pf.DurationVar(&flags.timeout, "timeout", 0, "Timeout for each page fetch")

	rootCmd.AddCommand(searchCmd, seasonsCmd, predictCmd, serveCmd)
}

func main() {
	// Setup logging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// loadConfig merges the config file, environment and command-line flags
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}
	if flags.baseURL != "" {
		cfg.BaseURL = flags.baseURL
	}
	if flags.modelPath != "" {
		cfg.ModelPath = flags.modelPath
	}
	if flags.redisAddr != "" {
		cfg.RedisAddr = flags.redisAddr
	}
	if flags.timeout > 0 {
		cfg.Timeout = flags.timeout
	}
	return cfg, nil
}

// newClient builds the scraper client, with a Redis page cache when configured
func newClient(ctx context.Context, cfg config.Config) *scraper.Client {
	var pages scraper.PageCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pc := cache.New(rdb, cfg.CacheTTL)
		if err := pc.Ping(ctx); err != nil {
			log.Printf("Redis at %s unavailable, caching disabled: %v", cfg.RedisAddr, err)
		} else {
			log.Printf("Caching pages in Redis at %s (ttl %s)", cfg.RedisAddr, cfg.CacheTTL)
			pages = pc
		}
	}
	return scraper.NewClient(scraper.NewFetcher(cfg.Timeout, pages), scraper.WithBaseURL(cfg.BaseURL))
}

// newPipeline loads the model once and connects it to the scraper
func newPipeline(ctx context.Context, cfg config.Config) (*salary.Pipeline, error) {
	if cfg.ModelPath == "" {
		return nil, fmt.Errorf("no model configured: pass --model or set NBA_MODEL_PATH")
	}
	model, err := predictor.Load(cfg.ModelPath)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded model %q from %s", model.Name, cfg.ModelPath)
	return salary.NewPipeline(newClient(ctx, cfg), model), nil
}
