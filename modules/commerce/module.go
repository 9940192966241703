package commerce

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/validate/i18n"
	"github.com/dmitrymomot/validate/pkg/config"
	"github.com/dmitrymomot/validate/pkg/logger"
	"github.com/dmitrymomot/validate/pkg/pg"
	"github.com/dmitrymomot/validate/pkg/redis"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Module bundles the commerce handler with the infrastructure it owns.
// Callers mount Router() and call Close on shutdown.
type Module struct {
	Config  Config
	Handler *Handler

	pool *pgxpool.Pool
	rdb  *goredis.Client
}

// NewModule loads configuration from the environment, connects to
// postgres and redis, applies schema migrations, and assembles the
// handler. The translator may be nil to disable report localization;
// a nil logger gets a service-tagged default, text in development and
// JSON everywhere else.
func NewModule(ctx context.Context, translator *i18n.Translator, log *slog.Logger) (*Module, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load commerce config: %w", err)
	}

	if log == nil {
		format := logger.FormatJSON
		if cfg.Env == "development" {
			format = logger.FormatText
		}
		log = logger.New(
			logger.WithFormat(format),
			logger.WithService("commerce", cfg.Env),
		)
	}

	var pgCfg pg.Config
	if err := config.Load(&pgCfg); err != nil {
		return nil, fmt.Errorf("load postgres config: %w", err)
	}
	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pg.Migrate(ctx, pool, migrationsFS, pgCfg, log); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	var redisCfg redis.Config
	if err := config.Load(&redisCfg); err != nil {
		pool.Close()
		return nil, fmt.Errorf("load redis config: %w", err)
	}
	rdb, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	users := NewUserStore(pool, cfg.BcryptCost)
	catalog := NewCatalogStore(rdb)
	handler := NewHandler(cfg, users, catalog, translator, log,
		pg.Healthcheck(pool),
		redis.Healthcheck(rdb),
	)

	return &Module{
		Config:  cfg,
		Handler: handler,
		pool:    pool,
		rdb:     rdb,
	}, nil
}

// Router exposes the module's HTTP surface.
func (m *Module) Router() chi.Router {
	return m.Handler.Router()
}

// Close releases the database and redis connections.
func (m *Module) Close() error {
	m.pool.Close()
	return m.rdb.Close()
}
