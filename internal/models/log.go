package models

import "time"

// Log represents an expense or maintenance record for a vehicle.
// Logs are append-only: once created they are never mutated or removed.
type Log struct {
	ID          string    `json:"id"`
	VehicleID   string    `json:"vehicle_id"`
	LogType     LogType   `json:"log_type"`
	Cost        float64   `json:"cost"`
	Liters      float64   `json:"liters,omitempty"` // only meaningful for FUEL entries
	Description string    `json:"description,omitempty"`
	DateLogged  time.Time `json:"date_logged"`
}
