// Command availability-console serves the operator page for unavailable
// models and exposes Prometheus metrics.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mihaimyh/goavail/pkg/availability"
	"github.com/mihaimyh/goavail/pkg/availability/httpgateway"
	zerologadapter "github.com/mihaimyh/goavail/pkg/availability/logger/zerolog"
	prommetrics "github.com/mihaimyh/goavail/pkg/availability/metrics/prometheus"
	"github.com/mihaimyh/goavail/pkg/config"
	"github.com/mihaimyh/goavail/pkg/dashboard"
	"github.com/mihaimyh/goavail/pkg/telemetry"
)

const (
	serviceName     = "availability-console"
	shutdownTimeout = 10 * time.Second
)

func main() {
	configPath := flag.String("config", "", "path to a config file (default: ./configs/config.*)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}

	zlog := newZerolog(cfg, os.Stdout)
	logger := zerologadapter.NewLogger(&zlog)

	if err := run(cfg, logger); err != nil {
		logger.Error("Console stopped with error", availability.Field{Key: "error", Value: err})
		os.Exit(1)
	}
}

func loadConfig(path string) (config.ConsoleConfig, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func newZerolog(cfg config.ConsoleConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var zlog zerolog.Logger
	if cfg.LogFormat == "json" {
		zlog = zerolog.New(out)
	} else {
		zlog = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}
	return zlog.Level(level).With().Timestamp().Str("service", serviceName).Logger()
}

func run(cfg config.ConsoleConfig, logger availability.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Tracing {
		shutdownTracer, err := telemetry.InitTracer(serviceName, os.Stderr)
		if err != nil {
			return err
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = shutdownTracer(flushCtx)
		}()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := prommetrics.NewMetrics(reg, cfg.MetricsNamespace)

	gateway, err := httpgateway.New(httpgateway.Config{
		BaseURL:    cfg.APIBaseURL,
		APIKey:     cfg.APIKey,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
		Metrics:    metrics,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	translator := availability.CatalogFor(cfg.Locale)
	flash := dashboard.NewFlashNotifier(0, cfg.FlashTTL)
	console, err := availability.NewController(gateway, availability.Config{
		Notifier:   flash,
		Translator: translator,
		Metrics:    metrics,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	handler, err := dashboard.NewHandler(dashboard.Config{
		Console:    console,
		Flash:      flash,
		Translator: translator,
		Display:    availability.DisplayOptions{Layout: cfg.TimeLayout, Location: loc},
		Logger:     logger,
		RateLimit:  cfg.RateLimit,
	})
	if err != nil {
		return err
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Mount("/", handler.Router())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// The page renders a loading state until the first fetch settles.
		_ = console.Start(gctx)
		return nil
	})

	g.Go(func() error {
		logger.Info("Availability console listening",
			availability.Field{Key: "addr", Value: cfg.ListenAddr},
			availability.Field{Key: "api_base_url", Value: cfg.APIBaseURL},
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down availability console")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := handler.Wait(shutdownCtx); err != nil {
			logger.Warn("Pending actions did not settle before shutdown", availability.Field{Key: "error", Value: err})
		}
		return nil
	})

	return g.Wait()
}
