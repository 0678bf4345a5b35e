package app

import (
	simulationAPI "baccarat_sim/internal/api/simulation"
	"baccarat_sim/internal/config"
	"baccarat_sim/internal/config/env"
	"baccarat_sim/internal/repository"
	"baccarat_sim/internal/repository/run_cache_repo"
	"baccarat_sim/internal/repository/run_pg_repo"
	"baccarat_sim/internal/service"
	"baccarat_sim/internal/service/simulation"
	"context"
	"errors"
	"log"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServiceProvider struct {
	configPath string

	//TXManager
	txManager trm.Manager

	// Database (необязательно)
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Simulation bits
	simCfg  config.SimulationConfig
	runRepo repository.RunRepository
	simServ service.SimulationService
	simHand *simulationAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(configPath string) *ServiceProvider {
	return &ServiceProvider{configPath: configPath}
}

// PgConfig возвращает nil, если PG_DSN не задан
func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			if errors.Is(err, env.ErrPGNotConfigured) {
				return nil
			}
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) SimulationCfg() config.SimulationConfig {
	if sp.simCfg == nil {
		cfg, err := env.NewSimulationConfigFromYAML(sp.configPath)
		if err != nil {
			log.Printf("simulation config %q not loaded, using defaults: %v", sp.configPath, err)
			cfg = env.DefaultSimulationConfig()
		}
		sp.simCfg = cfg
	}
	return sp.simCfg
}

// RunRepository Postgres при заданном PG_DSN, иначе кэш в памяти
func (sp *ServiceProvider) RunRepository(ctx context.Context) repository.RunRepository {
	if sp.runRepo == nil {
		if sp.PgConfig() != nil {
			sp.runRepo = run_pg_repo.NewRunRepository(sp.DBClient(ctx), sp.TXManager(ctx))
		} else {
			log.Println("PG_DSN not set, last run is kept in memory")
			sp.runRepo = run_cache_repo.NewRunCacheRepository()
		}
	}
	return sp.runRepo
}

func (sp *ServiceProvider) SimulationService(ctx context.Context) service.SimulationService {
	if sp.simServ == nil {
		sp.simServ = simulation.NewSimulationService(sp.SimulationCfg(), sp.RunRepository(ctx))
	}
	return sp.simServ
}

func (sp *ServiceProvider) SimulationHandler(ctx context.Context) *simulationAPI.Handler {
	if sp.simHand == nil {
		sp.simHand = simulationAPI.NewHandler(simulationAPI.HandlerDeps{
			Serv: sp.SimulationService(ctx),
		})
	}
	return sp.simHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		sp.router = NewRouter(sp.SimulationHandler(ctx))
	}

	return sp.router
}

// NewRouter маршруты API симуляции
func NewRouter(simHandler *simulationAPI.Handler) chi.Router {
	r := chi.NewRouter()

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	// Simulation endpoints
	r.Route("/simulation", func(rr chi.Router) {
		rr.Get("/config", simHandler.Config)
		rr.Post("/run", simHandler.Run)
		rr.Get("/last", simHandler.LastRun)
		rr.Get("/last/export.csv", simHandler.Export)
		rr.Get("/last/strategies/{position}/{rule}", simHandler.Strategy)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Close освобождает пул соединений, если он создавался
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
