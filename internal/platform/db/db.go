package db

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vyshnavi005-max/AI-HRMS/internal/platform/config"
)

func Connect(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	// Managed Postgres providers append channel_binding=require, which the
	// driver does not accept.
	url := strings.ReplaceAll(cfg.DatabaseURL, "&channel_binding=require", "")
	url = strings.ReplaceAll(url, "?channel_binding=require", "?")

	poolCfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 2
	return pgxpool.NewWithConfig(ctx, poolCfg)
}
