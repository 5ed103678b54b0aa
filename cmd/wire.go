package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/senabank/operator-console/internal/api/metrics"
	"github.com/senabank/operator-console/internal/core/ports"
	"github.com/senabank/operator-console/internal/core/service"
	"github.com/senabank/operator-console/internal/infrastructure/db/memory"
	mongostore "github.com/senabank/operator-console/internal/infrastructure/db/mongo"
	redisstore "github.com/senabank/operator-console/internal/infrastructure/db/redis"
	"github.com/senabank/operator-console/internal/infrastructure/ledger"
	"github.com/senabank/operator-console/internal/pkg/config"
	"github.com/senabank/operator-console/pkg/logger"
)

type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	ledger  *ledger.Client
	store   ports.SessionStore
	auth    *service.AuthService
	closers []func(context.Context) error
}

func wireApp(ctx context.Context, cfg *config.Config, logOut io.Writer) (*app, error) {
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Pretty(),
		Output: logOut,
	})

	client, err := ledger.NewClient(cfg.Ledger.BaseURL, nil, cfg.Ledger.Timeout)
	if err != nil {
		return nil, fmt.Errorf("wire ledger client: %w", err)
	}

	a := &app{cfg: cfg, log: log, ledger: client}
	store, err := a.sessionStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}
	a.store = store

	recorder := metrics.Recorder{}
	dispatcher := service.NewDispatcher(client, recorder, log.With().Str("component", "dispatcher").Logger())
	a.auth = service.NewAuthService(
		client,
		store,
		service.NewWorkspaces(dispatcher),
		cfg.Session.TTL,
		recorder,
		log.With().Str("component", "auth").Logger(),
	)

	log.Debug().
		Str("ledger", cfg.Ledger.BaseURL).
		Str("sessions", cfg.Session.Backend).
		Msg("console wired")
	return a, nil
}

func (a *app) sessionStore(ctx context.Context) (ports.SessionStore, error) {
	switch a.cfg.Session.Backend {
	case config.BackendRedis:
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { return client.Close() })
		return redisstore.NewSessionStore(client), nil

	case config.BackendMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      a.cfg.Mongo.URI,
			Database: a.cfg.Mongo.Database,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Disconnect)
		repo := mongostore.NewSessionRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		return repo, nil

	default:
		return memory.NewSessionStore(), nil
	}
}

func (a *app) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i](ctx))
	}
	return errors.Join(errs...)
}
