package models

// Reading is one row of sensor_readings keyed by column name. Columns the
// API does not know about (command, x_value, air_status, ...) are carried
// through untouched.
type Reading map[string]any

// TableName is the only table the API reads from.
const TableName = "sensor_readings"
