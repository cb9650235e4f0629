package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/match-tally/internal/config"
	"github.com/riskibarqy/match-tally/internal/domain/tally"
	"github.com/riskibarqy/match-tally/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/match-tally/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/match-tally/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/match-tally/internal/infrastructure/repository/sqlite"
	"github.com/riskibarqy/match-tally/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	_ "github.com/lib/pq"
)

func newKeyValueStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (tally.KeyValueStore, func() error, error) {
	var (
		store   tally.KeyValueStore
		closeFn = func() error { return nil }
	)

	switch cfg.StorageDriver {
	case config.StorageMemory:
		store = memory.NewKeyValueStore(nil)
	case config.StorageSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		store, closeFn = db, db.Close
	case config.StoragePostgres:
		db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
			otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		store, closeFn = postgres.NewKeyValueStore(db), db.Close
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	if cfg.CacheEnabled {
		store = cache.NewKeyValueStore(store, cfg.CacheTTL)
	}

	logger.Info("storage ready",
		"driver", cfg.StorageDriver,
		"cache_enabled", cfg.CacheEnabled,
	)
	return store, closeFn, nil
}
