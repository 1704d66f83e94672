// Command authd serves the authentication API. Storage backends are picked
// from the environment: in-memory by default, Postgres for users and
// Postgres or Redis for sessions in durable deployments.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/authkit/modules/authapi"
	"github.com/dmitrymomot/authkit/pkg/authn"
	"github.com/dmitrymomot/authkit/pkg/authstrategy"
	"github.com/dmitrymomot/authkit/pkg/config"
	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/pg"
	"github.com/dmitrymomot/authkit/pkg/redis"
	"github.com/dmitrymomot/authkit/pkg/session"
	"github.com/dmitrymomot/authkit/pkg/userstore"
)

type serverConfig struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	UserBackend     string        `env:"USER_BACKEND" envDefault:"memory"`    // memory | postgres
	SessionBackend  string        `env:"SESSION_BACKEND" envDefault:"memory"` // memory | redis | postgres
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var srvCfg serverConfig
	config.MustLoad(&srvCfg)

	var strategyCfg authstrategy.Config
	config.MustLoad(&strategyCfg)

	var apiCfg authapi.Config
	config.MustLoad(&apiCfg)
	apiCfg.CookieName = strategyCfg.CookieName

	log := logger.New(
		logger.WithFormat(logger.Format(srvCfg.LogFormat)),
		logger.WithAttr(slog.String("service", "authd")),
	)

	if err := run(ctx, srvCfg, strategyCfg, apiCfg, log); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, srvCfg serverConfig, strategyCfg authstrategy.Config, apiCfg authapi.Config, log *slog.Logger) error {
	users, sessions, cleanup, err := buildStores(ctx, srvCfg, strategyCfg.TTL(), log)
	if err != nil {
		return err
	}
	defer cleanup()

	auth := authn.NewService(users, sessions,
		authn.WithSessionTTL(strategyCfg.TTL()),
		authn.WithLogger(log),
	)
	strategy := authstrategy.NewSession(sessions, users, strategyCfg.CookieName,
		authstrategy.WithTTL(strategyCfg.TTL()),
	)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Mount("/", authapi.New(apiCfg, auth, strategy, log).Router())

	srv := &http.Server{
		Addr:              srvCfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", srvCfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), srvCfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

// buildStores assembles the user and session stores from the configured
// backends and returns a cleanup closing whatever was opened.
func buildStores(ctx context.Context, srvCfg serverConfig, ttl time.Duration, log *slog.Logger) (userstore.Store, session.Store, func(), error) {
	var closers []func()
	cleanup := func() {
		for _, c := range closers {
			c()
		}
	}

	needsPG := srvCfg.UserBackend == "postgres" || srvCfg.SessionBackend == "postgres"
	var users userstore.Store = userstore.NewMemoryStore()
	var sessions session.Store

	if needsPG {
		var pgCfg pg.Config
		if err := config.Load(&pgCfg); err != nil {
			return nil, nil, cleanup, err
		}
		pgPool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return nil, nil, cleanup, err
		}
		closers = append(closers, pgPool.Close)

		if err := pg.Migrate(ctx, pgPool, pgCfg, log); err != nil {
			cleanup()
			return nil, nil, func() {}, err
		}

		if srvCfg.UserBackend == "postgres" {
			users = userstore.NewPGStore(pgPool)
		}
		if srvCfg.SessionBackend == "postgres" {
			sessions = session.NewPGStore(pgPool)
		}
	}

	switch srvCfg.SessionBackend {
	case "redis":
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			cleanup()
			return nil, nil, func() {}, err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			cleanup()
			return nil, nil, func() {}, err
		}
		closers = append(closers, func() { _ = client.Close() })
		sessions = session.NewRedisStore(client)
	case "postgres":
		// Already built above.
	default:
		memStore := session.NewMemoryStore(srvCfg.CleanupInterval, ttl)
		closers = append(closers, func() { _ = memStore.Close() })
		sessions = memStore
	}

	if sessions == nil {
		cleanup()
		return nil, nil, func() {}, errors.New("no session backend configured")
	}

	return users, sessions, cleanup, nil
}
