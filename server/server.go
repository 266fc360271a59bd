// Package server exposes the analyzer over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seo-optimizer/contentseo/analyzer"
	"github.com/seo-optimizer/contentseo/logging"
	"github.com/seo-optimizer/contentseo/metrics"
	"github.com/seo-optimizer/contentseo/middleware"
	"github.com/seo-optimizer/contentseo/page"
	"github.com/seo-optimizer/contentseo/rules"
	"github.com/seo-optimizer/contentseo/stats"
)

// Options wires the server's collaborators. Nil collaborators disable the
// feature that needs them, except Fetcher, Statistics and Logger which get
// defaults.
type Options struct {
	Locale      rules.Locale
	SiteURL     string
	Workers     int
	Fetcher     *page.Fetcher
	Statistics  *logging.Statistics
	Storage     *stats.Storage
	Metrics     *metrics.Metrics
	RateLimiter *middleware.RateLimiter
	Logger      *zap.Logger
}

// Server owns the gin engine and one analyzer per locale.
type Server struct {
	engine     *gin.Engine
	analyzers  map[rules.Locale]*analyzer.Analyzer
	locale     rules.Locale
	siteURL    string
	fetcher    *page.Fetcher
	statistics *logging.Statistics
	storage    *stats.Storage
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// New builds the server and registers its routes.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Locale == "" {
		opts.Locale = rules.DefaultLocale
	}
	if opts.Statistics == nil {
		opts.Statistics = logging.NewStatistics("", false, opts.Logger)
	}

	analyzerOpts := []analyzer.Option{
		analyzer.WithLogger(opts.Logger.Named("analyzer")),
		analyzer.WithWorkers(opts.Workers),
	}
	if opts.Storage != nil {
		analyzerOpts = append(analyzerOpts, analyzer.WithObserver(opts.Storage))
	}
	if opts.Metrics != nil {
		analyzerOpts = append(analyzerOpts, analyzer.WithObserver(opts.Metrics))
	}
	if opts.Fetcher == nil {
		opts.Fetcher = page.NewFetcher(page.Options{}, FetchOptions(opts.Logger.Named("fetcher"), opts.Storage, opts.Metrics)...)
	}

	s := &Server{
		engine:     gin.New(),
		analyzers:  make(map[rules.Locale]*analyzer.Analyzer),
		locale:     opts.Locale,
		siteURL:    opts.SiteURL,
		fetcher:    opts.Fetcher,
		statistics: opts.Statistics,
		storage:    opts.Storage,
		metrics:    opts.Metrics,
		logger:     opts.Logger,
	}
	for _, l := range rules.Locales() {
		s.analyzers[l] = analyzer.New(rules.Default(l), analyzerOpts...)
	}

	s.engine.Use(middleware.ErrorHandler(opts.Logger))
	s.engine.Use(middleware.RequestLogger(opts.Logger.Named("http")))
	if opts.RateLimiter != nil {
		s.engine.Use(opts.RateLimiter.RateLimit())
	}
	s.engine.Use(cors())
	s.engine.Use(middleware.Stats(opts.Statistics))
	s.routes()
	return s
}

// FetchOptions reports fetch activity to storage and m when they are set.
func FetchOptions(logger *zap.Logger, storage *stats.Storage, m *metrics.Metrics) []page.Option {
	opts := []page.Option{page.WithLogger(logger)}
	if storage != nil {
		opts = append(opts, page.WithRecorder(storage))
	}
	if m != nil {
		opts = append(opts, page.WithRecorder(m), page.WithDurationObserver(m.ObserveFetch))
	}
	return opts
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) routes() {
	api := s.engine.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/rules", s.listRules)
		api.POST("/analyze", s.analyze)
		api.POST("/analyze/single", s.analyzeSingle)
		api.POST("/analyze/url", s.analyzeURL)
		api.GET("/statistics", s.getStatistics)
	}
	if s.metrics != nil {
		s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := s.statistics.Save(); err != nil {
		s.logger.Error("failed to save statistics", zap.Error(err))
	}
	return nil
}
