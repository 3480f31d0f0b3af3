package engine

import (
	"time"

	"github.com/fleetops/fleet-dispatch/internal/models"
)

// Seed loads the fixed example fleet the process starts with. Entities
// keep their well-known ids so the seeded trips and logs resolve.
func (e *Engine) Seed() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, v := range seedVehicles() {
		e.reg.CreateVehicle(v)
	}
	for _, d := range seedDrivers() {
		e.reg.CreateDriver(d)
	}
	for _, t := range seedTrips() {
		e.reg.CreateTrip(t)
	}
	for _, l := range seedLogs() {
		e.reg.CreateLog(l)
	}
	e.log.WithField("vehicles", len(e.reg.Vehicles())).Info("fleet seeded")
	return e.snapshotLocked()
}

func seedVehicles() []models.Vehicle {
	return []models.Vehicle{
		{ID: "v-1", Model: "Ford Transit 250", LicensePlate: "ABC-1234", Type: models.VehicleTypeVan, Region: "North", CapacityKG: 1500, OdometerKM: 45000, AcquisitionCost: 35000, Status: models.VehicleAvailable},
		{ID: "v-2", Model: "Chevy Express", LicensePlate: "XYZ-9876", Type: models.VehicleTypeVan, Region: "South", CapacityKG: 1200, OdometerKM: 80000, AcquisitionCost: 28000, Status: models.VehicleInShop},
		{ID: "v-3", Model: "Mack Anthem", LicensePlate: "TRK-5555", Type: models.VehicleTypeTruck, Region: "North", CapacityKG: 15000, OdometerKM: 125000, AcquisitionCost: 150000, Status: models.VehicleOnTrip},
	}
}

func seedDrivers() []models.Driver {
	return []models.Driver{
		{ID: "d-1", Name: "Alex Johnson", LicenseExpiry: date(2027, 5, 12), LicenseCategory: models.VehicleTypeVan, SafetyScore: 98, Status: models.DriverAvailable},
		{ID: "d-2", Name: "Sarah Smith", LicenseExpiry: date(2026, 10, 15), LicenseCategory: models.VehicleTypeTruck, SafetyScore: 100, Status: models.DriverOnTrip},
		{ID: "d-3", Name: "Mike Davis", LicenseExpiry: date(2023, 1, 1), LicenseCategory: models.VehicleTypeVan, SafetyScore: 85, Status: models.DriverSuspended},
	}
}

func seedTrips() []models.Trip {
	return []models.Trip{
		{ID: "t-1", VehicleID: "v-3", DriverID: "d-2", CargoWeight: 12000, ExpectedRevenue: 4500, Origin: "Warehouse A", Destination: "Store 42", Status: models.TripDispatched},
		{ID: "t-2", VehicleID: "v-1", DriverID: "d-1", CargoWeight: 800, ExpectedRevenue: 300, Origin: "Store 1", Destination: "Store 2", Status: models.TripCompleted},
	}
}

func seedLogs() []models.Log {
	return []models.Log{
		{ID: "l-1", VehicleID: "v-1", LogType: models.LogFuel, Cost: 120.50, Liters: 65, DateLogged: time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)},
		{ID: "l-2", VehicleID: "v-2", LogType: models.LogMaintenance, Cost: 850.00, Description: "Engine knocking, replaced timing belt.", DateLogged: time.Date(2026, 2, 21, 8, 0, 0, 0, time.UTC)},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
