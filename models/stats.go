package models

import "time"

// Stats is the aggregate row over the whole table. Every field except
// TotalReadings is NULL when the table is empty.
type Stats struct {
	TotalReadings  int64      `gorm:"column:total_readings" json:"total_readings"`
	AvgPressure    *float64   `gorm:"column:avg_pressure" json:"avg_pressure"`
	MinPressure    *float64   `gorm:"column:min_pressure" json:"min_pressure"`
	MaxPressure    *float64   `gorm:"column:max_pressure" json:"max_pressure"`
	AvgTemperature *float64   `gorm:"column:avg_temperature" json:"avg_temperature"`
	MinTemperature *float64   `gorm:"column:min_temperature" json:"min_temperature"`
	MaxTemperature *float64   `gorm:"column:max_temperature" json:"max_temperature"`
	FirstReading   *time.Time `gorm:"column:first_reading" json:"first_reading"`
	LatestReading  *time.Time `gorm:"column:latest_reading" json:"latest_reading"`
}
