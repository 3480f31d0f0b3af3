package models

// Trip represents a cargo assignment of one vehicle and one driver.
type Trip struct {
	ID              string     `json:"id"`
	VehicleID       string     `json:"vehicle_id"`
	DriverID        string     `json:"driver_id"`
	CargoWeight     float64    `json:"cargo_weight"` // kg, at most the vehicle's capacity at creation
	ExpectedRevenue float64    `json:"expected_revenue"`
	Origin          string     `json:"origin"`
	Destination     string     `json:"destination"`
	Status          TripStatus `json:"status"`
}
