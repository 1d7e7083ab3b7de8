package app

import (
	"context"
	"net/http"

	authAPI "funny_arcade/internal/api/auth"
	reactionAPI "funny_arcade/internal/api/reaction"
	slotsAPI "funny_arcade/internal/api/slots"
	spinnerAPI "funny_arcade/internal/api/spinner"
	terminalAPI "funny_arcade/internal/api/terminal"
	typingAPI "funny_arcade/internal/api/typing"
	"funny_arcade/internal/config"
	"funny_arcade/internal/config/env"
	"funny_arcade/internal/logger"
	"funny_arcade/internal/middleware"
	"funny_arcade/internal/repository"
	"funny_arcade/internal/repository/reaction_repo"
	"funny_arcade/internal/repository/slots_repo"
	"funny_arcade/internal/repository/slots_stats_repo"
	"funny_arcade/internal/repository/terminal_repo"
	"funny_arcade/internal/repository/user_repo"
	"funny_arcade/internal/service"
	"funny_arcade/internal/service/auth"
	"funny_arcade/internal/service/reaction"
	"funny_arcade/internal/service/slots"
	"funny_arcade/internal/service/spinner"
	"funny_arcade/internal/service/terminal"
	"funny_arcade/internal/service/typing"
	"funny_arcade/pkg/resp"
	"funny_arcade/pkg/rng"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const gameConfigPath = "config.yaml"

type ServiceProvider struct {
	// Logger
	logCfg config.LogConfig
	log    *zerolog.Logger

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis
	redisConfig config.RedisConfig
	redisClient redis.UniversalClient

	// Auth bits
	jwtCfg   config.JWTConfig
	userRepo repository.UserRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// Slots bits
	slotsCfg       config.SlotsConfig
	slotsRepo      repository.SlotsRepository
	slotsStatsRepo repository.SlotsStatsRepository
	slotsServ      service.SlotsService
	slotsHand      *slotsAPI.Handler

	// Spinner bits
	spinnerServ service.SpinnerService
	spinnerHand *spinnerAPI.Handler

	// Typing bits
	typingServ service.TypingService
	typingHand *typingAPI.Handler

	// Terminal bits
	terminalCfg  config.TerminalConfig
	terminalRepo repository.TerminalHistoryRepository
	terminalServ service.TerminalService
	terminalHand *terminalAPI.Handler

	// Reaction bits
	reactionRepo repository.ReactionRepository
	reactionServ service.ReactionService
	reactionHand *reactionAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLogConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() zerolog.Logger {
	if sp.log == nil {
		l := logger.New(sp.LogCfg())
		sp.log = &l
	}
	return *sp.log
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
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

func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if sp.redisConfig == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisConfig = cfg
	}
	return sp.redisConfig
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) redis.UniversalClient {
	if sp.redisClient == nil {
		cfg := sp.RedisConfig()
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
	}
	return sp.redisClient
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

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.JWTCfg(), sp.Logger())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) SlotsCfg() config.SlotsConfig {
	if sp.slotsCfg == nil {
		cfg, err := env.NewSlotsConfigFromYAML(gameConfigPath)
		if err != nil {
			panic("failed to get slots config: " + err.Error())
		}
		sp.slotsCfg = cfg
	}
	return sp.slotsCfg
}

func (sp *ServiceProvider) SlotsRepository(ctx context.Context) repository.SlotsRepository {
	if sp.slotsRepo == nil {
		sp.slotsRepo = slots_repo.NewSlotsRepository(sp.DBClient(ctx))
	}
	return sp.slotsRepo
}

func (sp *ServiceProvider) SlotsStatsRepository() repository.SlotsStatsRepository {
	if sp.slotsStatsRepo == nil {
		sp.slotsStatsRepo = slots_stats_repo.NewSlotsStatsRepository(slots_stats_repo.DefaultWindowSize)
	}
	return sp.slotsStatsRepo
}

func (sp *ServiceProvider) SlotsService(ctx context.Context) service.SlotsService {
	if sp.slotsServ == nil {
		sp.slotsServ = slots.NewSlotsService(
			sp.SlotsCfg(),
			sp.SlotsRepository(ctx),
			sp.SlotsStatsRepository(),
			sp.TXManager(ctx),
			rng.Global(),
			sp.Logger(),
		)
	}
	return sp.slotsServ
}

func (sp *ServiceProvider) SlotsHandler(ctx context.Context) *slotsAPI.Handler {
	if sp.slotsHand == nil {
		sp.slotsHand = slotsAPI.NewHandler(slotsAPI.HandlerDeps{Serv: sp.SlotsService(ctx)})
	}
	return sp.slotsHand
}

func (sp *ServiceProvider) SpinnerService() service.SpinnerService {
	if sp.spinnerServ == nil {
		sp.spinnerServ = spinner.NewSpinnerService(rng.Global(), sp.Logger())
	}
	return sp.spinnerServ
}

func (sp *ServiceProvider) SpinnerHandler() *spinnerAPI.Handler {
	if sp.spinnerHand == nil {
		sp.spinnerHand = spinnerAPI.NewHandler(spinnerAPI.HandlerDeps{Serv: sp.SpinnerService()})
	}
	return sp.spinnerHand
}

func (sp *ServiceProvider) TypingService() service.TypingService {
	if sp.typingServ == nil {
		sp.typingServ = typing.NewTypingService(sp.Logger())
	}
	return sp.typingServ
}

func (sp *ServiceProvider) TypingHandler() *typingAPI.Handler {
	if sp.typingHand == nil {
		sp.typingHand = typingAPI.NewHandler(typingAPI.HandlerDeps{Serv: sp.TypingService()})
	}
	return sp.typingHand
}

func (sp *ServiceProvider) TerminalCfg() config.TerminalConfig {
	if sp.terminalCfg == nil {
		cfg, err := env.NewTerminalConfigFromYAML(gameConfigPath)
		if err != nil {
			panic("failed to get terminal config: " + err.Error())
		}
		sp.terminalCfg = cfg
	}
	return sp.terminalCfg
}

func (sp *ServiceProvider) TerminalRepository(ctx context.Context) repository.TerminalHistoryRepository {
	if sp.terminalRepo == nil {
		sp.terminalRepo = terminal_repo.NewTerminalHistoryRepository(sp.RedisClient(ctx))
	}
	return sp.terminalRepo
}

func (sp *ServiceProvider) TerminalService(ctx context.Context) service.TerminalService {
	if sp.terminalServ == nil {
		sp.terminalServ = terminal.NewTerminalService(sp.TerminalCfg(), sp.TerminalRepository(ctx), sp.Logger())
	}
	return sp.terminalServ
}

func (sp *ServiceProvider) TerminalHandler(ctx context.Context) *terminalAPI.Handler {
	if sp.terminalHand == nil {
		sp.terminalHand = terminalAPI.NewHandler(terminalAPI.HandlerDeps{Serv: sp.TerminalService(ctx)})
	}
	return sp.terminalHand
}

func (sp *ServiceProvider) ReactionRepository(ctx context.Context) repository.ReactionRepository {
	if sp.reactionRepo == nil {
		sp.reactionRepo = reaction_repo.NewReactionRepository(sp.RedisClient(ctx), logger.Component(sp.Logger(), "reaction_repo"))
	}
	return sp.reactionRepo
}

func (sp *ServiceProvider) ReactionService(ctx context.Context) service.ReactionService {
	if sp.reactionServ == nil {
		sp.reactionServ = reaction.NewReactionService(sp.ReactionRepository(ctx), sp.Logger())
	}
	return sp.reactionServ
}

func (sp *ServiceProvider) ReactionHandler(ctx context.Context) *reactionAPI.Handler {
	if sp.reactionHand == nil {
		sp.reactionHand = reactionAPI.NewHandler(reactionAPI.HandlerDeps{Serv: sp.ReactionService(ctx)})
	}
	return sp.reactionHand
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

// Close закрывает соединения с хранилищами
func (sp *ServiceProvider) Close() {
	if sp.redisClient != nil {
		if err := sp.redisClient.Close(); err != nil {
			l := sp.Logger()
			l.Warn().Err(err).Msg("failed to close redis client")
		}
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(middleware.Logging(sp.Logger(), "/health"))
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
		})

		authMw := middleware.Auth(sp.JWTCfg().AccessTokenSecretKey())

		// Slots endpoints
		slotsHandler := sp.SlotsHandler(ctx)
		r.Route("/slots", func(rr chi.Router) {
			rr.Get("/modes", slotsHandler.Modes)
			rr.Get("/stats", slotsHandler.Stats)

			rr.Group(func(pr chi.Router) {
				pr.Use(authMw)
				pr.Post("/spin", slotsHandler.Spin)
				pr.Get("/check-data", slotsHandler.CheckData)
				pr.Post("/free-coins", slotsHandler.FreeCoins)
				pr.Post("/cleanup", slotsHandler.Cleanup)
				pr.Post("/clear", slotsHandler.Clear)
			})
		})

		// Spinner endpoints
		spinnerHandler := sp.SpinnerHandler()
		r.Route("/spinner", func(rr chi.Router) {
			rr.Post("/spin", spinnerHandler.Spin)
			rr.Get("/presets", spinnerHandler.Presets)
		})

		// Typing endpoints
		typingHandler := sp.TypingHandler()
		r.Route("/typing", func(rr chi.Router) {
			rr.Post("/metrics", typingHandler.Metrics)
		})

		// Terminal endpoints
		terminalHandler := sp.TerminalHandler(ctx)
		r.Route("/terminal", func(rr chi.Router) {
			rr.Post("/complete", terminalHandler.Complete)
			rr.Get("/commands", terminalHandler.Commands)

			rr.Group(func(pr chi.Router) {
				pr.Use(authMw)
				pr.Post("/exec", terminalHandler.Exec)
				pr.Get("/history", terminalHandler.History)
			})
		})

		// Reaction endpoints
		reactionHandler := sp.ReactionHandler(ctx)
		r.Route("/reaction", func(rr chi.Router) {
			rr.Use(authMw)
			rr.Post("/record", reactionHandler.Record)
			rr.Get("/scores", reactionHandler.Scores)
			rr.Delete("/scores", reactionHandler.Reset)
		})

		sp.router = r
	}

	return sp.router
}
