package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"cbl-crm/go_backend/internal/app/config"
	apphttp "cbl-crm/go_backend/internal/app/http"
	"cbl-crm/go_backend/internal/app/http/handlers"
	"cbl-crm/go_backend/internal/app/logger"
	"cbl-crm/go_backend/internal/clock"
	pdfgen "cbl-crm/go_backend/internal/domain/quote/pdf/gofpdf"
	"cbl-crm/go_backend/internal/domain/reference"
	"cbl-crm/go_backend/internal/infra/db/postgres"
	"cbl-crm/go_backend/internal/infra/redis"
	"cbl-crm/go_backend/internal/infra/supabase"
)

func Run() {
	cfg := config.MustLoad()

	lg := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	defer lg.Sync()

	store, closeStore, err := newCounterStore(context.Background(), cfg, lg)
	if err != nil {
		lg.Fatal("counter store", zap.String("backend", cfg.CounterBackend), zap.Error(err))
	}
	defer closeStore()

	loc, err := time.LoadLocation(cfg.ReferenceTimezone)
	if err != nil {
		lg.Fatal("reference timezone", zap.Error(err))
	}
	clk := clock.System{Location: loc}

	refs := reference.NewGenerator(store,
		reference.WithClock(clk),
		reference.WithLogger(lg.Named("reference")),
	)
	h := handlers.New(cfg, lg, refs, pdfgen.New(cfg.CompanyName), clk)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           apphttp.NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lg.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.String("counter_backend", cfg.CounterBackend))
	serve(srv, lg)
}

func serve(srv *http.Server, lg *zap.Logger) {
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lg.Fatal("http server", zap.String("addr", srv.Addr), zap.Error(err))
	}
}

// newCounterStore returns a nil store for the "none" backend, which sends
// every reference down the fallback path. An unreachable database is not
// fatal here for the same reason.
func newCounterStore(ctx context.Context, cfg config.Config, lg *zap.Logger) (reference.CounterStore, func(), error) {
	noop := func() {}
	switch cfg.CounterBackend {
	case config.CounterPostgres:
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := db.EnsureSchema(ctx); err != nil {
			lg.Warn("counters table not ensured, references may fall back", zap.Error(err))
		}
		return postgres.NewCounterStore(db), db.Close, nil
	case config.CounterRedis:
		client, err := redis.NewClient(cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		return redis.NewCounterStore(client, ""), func() { client.Close() }, nil
	case config.CounterSupabase:
		httpClient := &http.Client{Timeout: 15 * time.Second}
		return supabase.NewCounterStore(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, httpClient), noop, nil
	case config.CounterNone:
		return nil, noop, nil
	}
	return nil, noop, fmt.Errorf("unknown counter backend %q", cfg.CounterBackend)
}
