package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taninigeria-aa/mda-hr/internal/domain/employee"
	"github.com/taninigeria-aa/mda-hr/internal/domain/promotion"
	"github.com/taninigeria-aa/mda-hr/internal/domain/reports"
	"github.com/taninigeria-aa/mda-hr/internal/platform/config"
	"github.com/taninigeria-aa/mda-hr/internal/platform/db"
	"github.com/taninigeria-aa/mda-hr/internal/platform/jobs"
	"github.com/taninigeria-aa/mda-hr/internal/platform/metrics"
	"github.com/taninigeria-aa/mda-hr/internal/transport/http/api"
	employeehandler "github.com/taninigeria-aa/mda-hr/internal/transport/http/handlers/employees"
	promotionhandler "github.com/taninigeria-aa/mda-hr/internal/transport/http/handlers/promotions"
	reporthandler "github.com/taninigeria-aa/mda-hr/internal/transport/http/handlers/reports"
	"github.com/taninigeria-aa/mda-hr/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Pool   *pgxpool.Pool
	Router http.Handler
	Jobs   *jobs.Service
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, err
		}
	}

	router, background := buildApp(pool, cfg)
	return &App{Config: cfg, Pool: pool, Router: router, Jobs: background}, nil
}

func (a *App) Close() {
	a.Pool.Close()
}

func Run() {
	ctx := context.Background()
	app, err := New(ctx, config.Load())
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Close()

	app.Jobs.Start(ctx)
	app.Jobs.EnqueueFactsRefresh()

	log.Printf("promotion engine listening on %s", app.Config.Addr)
	if err := http.ListenAndServe(app.Config.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func buildApp(pool *pgxpool.Pool, cfg config.Config) (http.Handler, *jobs.Service) {
	employeeStore := employee.NewStore(pool)
	employeeService := employee.NewService(employeeStore)
	promotionStore := promotion.NewStore(pool)
	promotionService := promotion.NewService(promotionStore, employeeStore, employee.GeoZones)
	reportService := reports.NewService(employeeStore, promotionStore, employee.GeoZones)

	collector := metrics.New()
	background := jobs.New(pool, cfg, promotionService, collector)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(collector))
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		employeehandler.NewHandler(employeeService, promotionService).RegisterRoutes(r)
		promotionhandler.NewHandler(promotionService, cfg.DefaultMinYears).RegisterRoutes(r)
		reporthandler.NewHandler(reportService).RegisterRoutes(r)
	})

	return router, background
}
