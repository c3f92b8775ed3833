package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gmarm/internal/answers"
	"gmarm/internal/clienttype"
	"gmarm/internal/documents"
	documentmetrics "gmarm/internal/documents/metrics"
	documentstore "gmarm/internal/documents/store"
	"gmarm/internal/eligibility"
	"gmarm/internal/platform/apiclient"
	"gmarm/internal/platform/config"
	"gmarm/internal/platform/httpserver"
	"gmarm/internal/platform/logger"
	"gmarm/internal/platform/middleware"
	redisclient "gmarm/internal/platform/redis"
	"gmarm/internal/settings"
	"gmarm/internal/submission"
	submissionhandler "gmarm/internal/submission/handler"
	submissionmetrics "gmarm/internal/submission/metrics"
	"gmarm/internal/weapons"
	weaponmetrics "gmarm/internal/weapons/metrics"
	audit "gmarm/pkg/platform/audit"
	"gmarm/pkg/platform/audit/publisher"
	"gmarm/pkg/platform/audit/publishers/kafka"
	auditmemory "gmarm/pkg/platform/audit/store/memory"
	auditpostgres "gmarm/pkg/platform/audit/store/postgres"
	"gmarm/pkg/platform/httputil"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business rules live in the internal packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend := apiclient.New(cfg.Backend, apiclient.WithLogger(log))

	auditPublisher, closeAudit, err := buildAudit(cfg.Audit, log)
	if err != nil {
		return err
	}
	defer closeAudit()

	redis, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	var cache documents.Cache = documentstore.NewInMemoryCache(cfg.Cache.RequirementsTTL)
	if redis != nil {
		defer redis.Close()
		cache = documentstore.NewRedisCache(redis.Client, cfg.Cache.RequirementsTTL)
		log.Info("requirements cache backed by redis")
	}

	registry := clienttype.NewRegistry(backend,
		clienttype.WithLogger(log),
		clienttype.WithRetryDelays(cfg.Registry.RetryDelays),
	)
	registry.Start(ctx)

	params := settings.New(backend, settings.Defaults{
		TaxRate:            cfg.Rules.TaxRate,
		MinimumPurchaseAge: cfg.Rules.MinimumPurchaseAge,
	}, settings.WithLogger(log))
	params.Load(ctx)

	resolver := documents.NewResolver(backend, cache,
		documents.WithLogger(log),
		documents.WithMetrics(documentmetrics.New()),
	)
	gate := documents.NewGate(registry, resolver, backend, backend)

	weaponService := weapons.New(backend, backend, gate, params,
		weapons.WithLogger(log),
		weapons.WithAuditPublisher(auditPublisher),
		weapons.WithMetrics(weaponmetrics.New()),
	)

	intake, err := submission.New(backend, backend, backend, registry, resolver,
		eligibility.NewEvaluator(params),
		weaponService,
		submission.WithLogger(log),
		submission.WithAuditPublisher(auditPublisher),
		submission.WithMetrics(submissionmetrics.New()),
		submission.WithQuestionCatalog(answers.NewCatalog(backend)),
	)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestContext)
	submissionhandler.New(intake, log, cfg.Backend.UploadSize).Register(r)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{"status": "ok", "client_types_loaded": registry.Loaded()}
		if err := registry.LastError(); err != nil && !registry.Loaded() {
			body["client_types"] = "fallback: " + err.Error()
		}
		if redis != nil {
			if err := redis.Health(r.Context()); err != nil {
				body["status"] = "degraded"
				body["redis"] = err.Error()
				httputil.WriteJSON(w, http.StatusServiceUnavailable, body)
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, body)
	})

	srv := httpserver.New(cfg.Server.Addr, r)
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting gmarm", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// buildAudit picks the trail store (postgres when DATABASE_URL is set,
// memory otherwise) and adds the Kafka stream when brokers are configured.
func buildAudit(cfg config.Audit, log *slog.Logger) (*publisher.Publisher, func(), error) {
	opts := []publisher.Option{publisher.WithLogger(log), publisher.WithAsyncBuffer(256)}
	var closers []func()

	var store audit.Store
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { _ = db.Close() })
		store = auditpostgres.New(db)
	} else {
		store = auditmemory.NewInMemoryStore()
	}

	if len(cfg.KafkaBrokers) > 0 {
		sink, err := kafka.New(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			for _, c := range closers {
				c()
			}
			return nil, nil, err
		}
		closers = append(closers, sink.Close)
		opts = append(opts, publisher.WithSink(sink))
	}

	pub := publisher.NewPublisher(store, opts...)
	return pub, func() {
		pub.Close()
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}, nil
}
