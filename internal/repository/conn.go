package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/pkg/cleanup"
)

func newPool(cfg DBConfig, name string) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for " + name + " error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for " + name + ": " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool of " + name,
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

// storageErr wraps driver failures, keeping deadline expiry distinguishable
// so callers can apply retry-with-backoff semantics.
func storageErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(errorvalues.ErrStorageTimeout, errors.New(op))
	}
	return errors.New(op + ": " + err.Error())
}
