package models

import "time"

// Driver represents a fleet driver.
type Driver struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	LicenseExpiry   time.Time    `json:"license_expiry"`
	LicenseCategory VehicleType  `json:"license_category"` // must equal the type of any assigned vehicle
	SafetyScore     float64      `json:"safety_score"`     // 0-100
	Status          DriverStatus `json:"status"`
}
