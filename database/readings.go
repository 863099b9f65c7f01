package database

import (
	"context"

	"sensor-readings-api/models"
)

const (
	listQuery   = `SELECT * FROM sensor_readings ORDER BY timestamp DESC LIMIT $1 OFFSET $2`
	countQuery  = `SELECT COUNT(*) FROM sensor_readings`
	latestQuery = `SELECT * FROM sensor_readings ORDER BY timestamp DESC LIMIT 1`
	rangeQuery  = `SELECT * FROM sensor_readings WHERE timestamp BETWEEN $1 AND $2 ORDER BY timestamp DESC`
)

// ReadingFilter holds the optional bounds of a filtered fetch. Nil bounds
// are left out of the query.
type ReadingFilter struct {
	MinPressure *float64
	MaxPressure *float64
	MinTemp     *float64
	MaxTemp     *float64
	Limit       int
}

// Query renders the filter into SQL and its ordered arguments.
func (f ReadingFilter) Query() (string, []any) {
	return NewFilterQuery(models.TableName).
		WhereIf("pressure >= ?", f.MinPressure).
		WhereIf("pressure <= ?", f.MaxPressure).
		WhereIf("temperature >= ?", f.MinTemp).
		WhereIf("temperature <= ?", f.MaxTemp).
		Build(f.Limit)
}

type ReadingRepository struct {
	exec *Executor
}

func NewReadingRepository(q Querier) *ReadingRepository {
	return &ReadingRepository{exec: NewExecutor(q)}
}

func (r *ReadingRepository) List(ctx context.Context, limit, offset int) ([]models.Reading, error) {
	return r.exec.Rows(ctx, "list readings", listQuery, limit, offset)
}

func (r *ReadingRepository) Count(ctx context.Context) (int64, error) {
	return r.exec.Int64(ctx, "count readings", countQuery)
}

// Latest returns the reading with the greatest timestamp, or ErrNotFound
// when the table is empty.
func (r *ReadingRepository) Latest(ctx context.Context) (models.Reading, error) {
	return r.exec.Row(ctx, "latest reading", latestQuery)
}

// Range returns readings with start <= timestamp <= end. The bounds are sent
// as text and parsed by the store.
func (r *ReadingRepository) Range(ctx context.Context, start, end string) ([]models.Reading, error) {
	return r.exec.Rows(ctx, "range readings", rangeQuery, start, end)
}

func (r *ReadingRepository) Filter(ctx context.Context, f ReadingFilter) ([]models.Reading, error) {
	sql, args := f.Query()
	return r.exec.Rows(ctx, "filter readings", sql, args...)
}
