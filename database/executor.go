package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sensor-readings-api/models"

	"github.com/jackc/pgx/v5"
)

// Querier is the part of *pgxpool.Pool the executor needs. Each call
// acquires a connection and releases it when the rows are closed.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Executor runs parameterized statements and returns rows as column maps.
type Executor struct {
	q Querier
}

func NewExecutor(q Querier) *Executor {
	return &Executor{q: q}
}

// Rows runs sql and collects every row. An empty result is a non-nil,
// zero-length slice so it encodes as [].
func (e *Executor) Rows(ctx context.Context, name, sql string, args ...any) ([]models.Reading, error) {
	defer observe(name, time.Now())

	rows, err := e.q.Query(ctx, sql, args...)
	if err != nil {
		queryErrors.WithLabelValues(name).Inc()
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	readings, err := pgx.CollectRows(rows, rowToReading)
	if err != nil {
		queryErrors.WithLabelValues(name).Inc()
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if readings == nil {
		readings = []models.Reading{}
	}
	return readings, nil
}

// Row runs sql and returns its first row, or ErrNotFound.
func (e *Executor) Row(ctx context.Context, name, sql string, args ...any) (models.Reading, error) {
	defer observe(name, time.Now())

	rows, err := e.q.Query(ctx, sql, args...)
	if err != nil {
		queryErrors.WithLabelValues(name).Inc()
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	reading, err := pgx.CollectOneRow(rows, rowToReading)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		queryErrors.WithLabelValues(name).Inc()
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return reading, nil
}

// Int64 scans a single integer result, e.g. a COUNT(*).
func (e *Executor) Int64(ctx context.Context, name, sql string, args ...any) (int64, error) {
	defer observe(name, time.Now())

	var n int64
	if err := e.q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		queryErrors.WithLabelValues(name).Inc()
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

func rowToReading(row pgx.CollectableRow) (models.Reading, error) {
	m, err := pgx.RowToMap(row)
	if err != nil {
		return nil, err
	}
	return models.Reading(m), nil
}

func observe(name string, start time.Time) {
	queryDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}
