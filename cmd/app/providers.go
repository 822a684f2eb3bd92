package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/kundali/internal/domain/kundali"
	"github.com/yanqian/kundali/internal/infra/chartrepo"
	"github.com/yanqian/kundali/internal/infra/chartstore"
	"github.com/yanqian/kundali/internal/infra/config"
)

func provideKundaliConfig(cfg *config.Config) kundali.Config {
	return kundali.Config{
		CacheTTL:             cfg.Cache.TTL,
		ApparentSiderealTime: cfg.Engine.ApparentSiderealTime,
		DefaultVargas:        cfg.Engine.DefaultVargas,
	}
}

func provideChartRepository(cfg *config.Config, logger *slog.Logger) kundali.Repository {
	fallback := chartrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Archive.Postgres.DSN)
	if dsn == "" {
		logger.Info("archive postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.Archive.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Archive.Postgres.MaxConns
	}
	if cfg.Archive.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Archive.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("chart archive postgres repository enabled")
	return chartrepo.NewPostgresRepository(pool)
}

func provideChartStore(cfg *config.Config, logger *slog.Logger) kundali.Store {
	if cfg.Cache.Redis.Enabled {
		opt, err := buildValkeyOptions(cfg.Cache.Redis.Addr)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return chartstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return chartstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("chart valkey store enabled", "addr", cfg.Cache.Redis.Addr)
			return chartstore.NewValkeyStore(client, cfg.Cache.Redis.Prefix)
		}
	}
	return chartstore.NewMemoryStore()
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
