package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/exam_analyzer/internal/config"
)

const (
	maxRetries = 3
	retryDelay = 2 * time.Second
)

// NewPool does not dial: pgxpool connects lazily, so an unreachable database
// only shows up in Ping.
func NewPool(ctx context.Context, cfg config.PostgreSQL) (*pgxpool.Pool, error) {
	connectionURL := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     cfg.DBName,
		RawQuery: "sslmode=disable",
	}

	pool, err := pgxpool.New(ctx, connectionURL.String())
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	return pool, nil
}

// Ping checks the pool with a few retries so that a database starting next to
// the service is not reported as down.
func Ping(ctx context.Context, log *slog.Logger, pool *pgxpool.Pool) error {
	if err := Retry(log, pool.Ping, maxRetries, retryDelay)(ctx); err != nil {
		return fmt.Errorf("failed to ping pool: %w", err)
	}

	return nil
}

type PingFunction func(context.Context) error

func Retry(log *slog.Logger, ping PingFunction, retries int, delay time.Duration) PingFunction {
	return func(ctx context.Context) error {
		for attempt := 0; ; attempt++ {
			err := ping(ctx)
			if err == nil || attempt >= retries {
				return err
			}

			log.DebugContext(ctx, "database ping failed, retrying",
				slog.Int("attempt", attempt+1),
				slog.Int("max_retries", retries),
				slog.String("err", err.Error()))

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
