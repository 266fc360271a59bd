package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seo-optimizer/contentseo/logging"
	"github.com/seo-optimizer/contentseo/metrics"
	"github.com/seo-optimizer/contentseo/middleware"
	"github.com/seo-optimizer/contentseo/page"
	"github.com/seo-optimizer/contentseo/server"
	"github.com/seo-optimizer/contentseo/stats"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

const maintenanceInterval = 5 * time.Minute

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.Server.GinMode)

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return err
	}
	defer logger.Sync()

	storage, err := stats.NewStorage(cfg.Stats.DataDir, logger.Named("stats"))
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Shutdown(); err != nil {
			logger.Error("failed to flush stats", zap.Error(err))
		}
	}()

	m := metrics.New()
	format := page.FormatHTML
	if cfg.Fetch.ConvertToMarkdown {
		format = page.FormatMarkdown
	}
	fetcher := page.NewFetcher(page.Options{
		Timeout:      cfg.Fetch.Timeout,
		UserAgent:    cfg.Fetch.UserAgent,
		CacheTTL:     cfg.Fetch.CacheTTL,
		MaxCacheSize: cfg.Fetch.MaxCacheSize,
		Format:       format,
	}, server.FetchOptions(logger.Named("fetcher"), storage, m)...)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	srv := server.New(server.Options{
		Locale:      cfg.Locale(),
		SiteURL:     cfg.Analysis.SiteURL,
		Workers:     cfg.Analysis.Workers,
		Fetcher:     fetcher,
		Statistics:  logging.NewStatistics(cfg.Stats.DataDir, cfg.Logging.Development, logger.Named("statistics")),
		Storage:     storage,
		Metrics:     m,
		RateLimiter: limiter,
		Logger:      logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go maintain(ctx, logger, fetcher, limiter, storage, cfg.Stats.RetainMonths)

	return srv.Run(ctx, cfg.Addr())
}

// maintain periodically trims caches and old statistics until ctx ends.
func maintain(ctx context.Context, logger *zap.Logger, fetcher *page.Fetcher, limiter *middleware.RateLimiter, storage *stats.Storage, retainMonths int) {
	ticker := time.NewTicker(maintenanceInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fetcher.Cleanup()
			pruned := limiter.Prune()
			if retainMonths > 0 {
				storage.Cleanup(retainMonths)
			}
			logger.Debug("maintenance done",
				zap.Int("cachedPages", fetcher.CacheLen()),
				zap.Int("prunedClients", pruned),
			)
		}
	}
}
