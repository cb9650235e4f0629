package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/match-tally/internal/config"
	"github.com/riskibarqy/match-tally/internal/infrastructure/repository/kvrecord"
	"github.com/riskibarqy/match-tally/internal/interfaces/httpapi"
	"github.com/riskibarqy/match-tally/internal/platform/logging"
	"github.com/riskibarqy/match-tally/internal/usecase"
)

// NewHTTPServer builds the storage stack, loads both team records and
// returns the server plus a func that releases storage handles.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	store, closeStore, err := newKeyValueStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s storage: %w", cfg.StorageDriver, err)
	}

	tallySvc, err := usecase.NewTallyService(ctx, kvrecord.NewRepository(store), logger.Named("tally"))
	if err != nil {
		_ = closeStore()
		return nil, nil, fmt.Errorf("load tally state: %w", err)
	}

	handler := httpapi.NewHandler(tallySvc, logger.Named("httpapi"))
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, closeStore, nil
}
