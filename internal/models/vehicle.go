package models

// Vehicle represents a fleet vehicle.
type Vehicle struct {
	ID              string        `json:"id"`
	Model           string        `json:"model"`
	LicensePlate    string        `json:"license_plate"` // unique within the fleet
	Type            VehicleType   `json:"type"`
	Region          string        `json:"region"`
	CapacityKG      float64       `json:"capacity_kg"`
	OdometerKM      float64       `json:"odometer_km"` // monotonically non-decreasing
	AcquisitionCost float64       `json:"acquisition_cost"`
	Status          VehicleStatus `json:"status"`
}
