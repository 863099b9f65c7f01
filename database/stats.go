package database

import (
	"context"
	"fmt"
	"time"

	"sensor-readings-api/models"

	"gorm.io/gorm"
)

const statsQuery = `SELECT
	COUNT(*) AS total_readings,
	AVG(pressure)::float8 AS avg_pressure,
	MIN(pressure)::float8 AS min_pressure,
	MAX(pressure)::float8 AS max_pressure,
	AVG(temperature)::float8 AS avg_temperature,
	MIN(temperature)::float8 AS min_temperature,
	MAX(temperature)::float8 AS max_temperature,
	MIN(timestamp) AS first_reading,
	MAX(timestamp) AS latest_reading
FROM sensor_readings`

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Stats aggregates the whole table in one statement. On an empty table the
// aggregates come back NULL and stay nil.
func (r *StatsRepository) Stats(ctx context.Context) (*models.Stats, error) {
	defer observe("stats", time.Now())

	var stats models.Stats
	if err := r.db.WithContext(ctx).Raw(statsQuery).Scan(&stats).Error; err != nil {
		queryErrors.WithLabelValues("stats").Inc()
		return nil, fmt.Errorf("stats: %w", err)
	}
	return &stats, nil
}
