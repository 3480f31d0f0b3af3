package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/fleet-dispatch/internal/models"
)

func seededEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(nil)
	e.Seed()
	return e
}

func findVehicle(t *testing.T, snap Snapshot, id string) models.Vehicle {
	t.Helper()
	for _, v := range snap.Vehicles {
		if v.ID == id {
			return v
		}
	}
	t.Fatalf("vehicle %s not in snapshot", id)
	return models.Vehicle{}
}

func findDriver(t *testing.T, snap Snapshot, id string) models.Driver {
	t.Helper()
	for _, d := range snap.Drivers {
		if d.ID == id {
			return d
		}
	}
	t.Fatalf("driver %s not in snapshot", id)
	return models.Driver{}
}

func findTrip(t *testing.T, snap Snapshot, id string) models.Trip {
	t.Helper()
	for _, tr := range snap.Trips {
		if tr.ID == id {
			return tr
		}
	}
	t.Fatalf("trip %s not in snapshot", id)
	return models.Trip{}
}

func TestAddVehicleStartsAvailable(t *testing.T) {
	e := New(nil)
	snap, err := e.AddVehicle(VehicleInput{Model: "Ford Transit 250", LicensePlate: "NEW-0001", Type: "VAN", Region: "North", CapacityKG: 1500, OdometerKM: 100, AcquisitionCost: 35000})
	require.NoError(t, err)
	require.Len(t, snap.Vehicles, 1)
	assert.Equal(t, models.VehicleAvailable, snap.Vehicles[0].Status)
	assert.NotEmpty(t, snap.Vehicles[0].ID)
}

func TestAddDriverStartsOnDuty(t *testing.T) {
	e := New(nil)
	snap, err := e.AddDriver(DriverInput{Name: "Pat Lee", LicenseExpiry: date(2030, 1, 1), LicenseCategory: "TRUCK", SafetyScore: 92})
	require.NoError(t, err)
	require.Len(t, snap.Drivers, 1)
	assert.Equal(t, models.DriverOnDuty, snap.Drivers[0].Status)
}

func TestUpdateVehicleStatus(t *testing.T) {
	e := seededEngine(t)

	snap, err := e.UpdateVehicleStatus("v-1", "RETIRED")
	require.NoError(t, err)
	assert.Equal(t, models.VehicleRetired, findVehicle(t, snap, "v-1").Status)
}

func TestUpdateVehicleStatusUnknownID(t *testing.T) {
	e := seededEngine(t)
	_, err := e.UpdateVehicleStatus("v-404", "AVAILABLE")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateVehicleStatusRejectsForeignEnumValue(t *testing.T) {
	e := seededEngine(t)

	// SUSPENDED is a driver status; it must never be stored on a vehicle.
	_, err := e.UpdateVehicleStatus("v-1", "SUSPENDED")
	require.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, models.VehicleAvailable, findVehicle(t, e.Snapshot(), "v-1").Status)
}

func TestDispatchTripCascade(t *testing.T) {
	e := seededEngine(t)

	snap, err := e.DispatchTrip(DispatchInput{
		VehicleID:       "v-1",
		DriverID:        "d-1",
		CargoWeight:     900,
		ExpectedRevenue: 450,
		Origin:          "Warehouse A",
		Destination:     "Store 7",
	})
	require.NoError(t, err)

	require.Len(t, snap.Trips, 3)
	trip := snap.Trips[2]
	assert.Equal(t, models.TripDispatched, trip.Status)
	assert.Equal(t, "v-1", trip.VehicleID)
	assert.Equal(t, "d-1", trip.DriverID)
	assert.Equal(t, models.VehicleOnTrip, findVehicle(t, snap, "v-1").Status)
	assert.Equal(t, models.DriverOnTrip, findDriver(t, snap, "d-1").Status)
}

func TestDispatchFailureLeavesStateUntouched(t *testing.T) {
	e := seededEngine(t)
	before := e.Snapshot()

	_, err := e.DispatchTrip(DispatchInput{
		VehicleID:   "v-1",
		DriverID:    "d-404",
		CargoWeight: 900,
		Origin:      "A",
		Destination: "B",
	})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before, e.Snapshot())
}

func TestCompleteTripCascade(t *testing.T) {
	e := seededEngine(t)

	// t-1 is the seeded open trip: v-3 at 125000km, driven by d-2.
	snap, err := e.CompleteTrip("t-1", 125600)
	require.NoError(t, err)

	assert.Equal(t, models.TripCompleted, findTrip(t, snap, "t-1").Status)
	v := findVehicle(t, snap, "v-3")
	assert.Equal(t, models.VehicleAvailable, v.Status)
	assert.Equal(t, 125600.0, v.OdometerKM)
	assert.Equal(t, models.DriverOnDuty, findDriver(t, snap, "d-2").Status)
}

func TestCompleteTripUnknownID(t *testing.T) {
	e := seededEngine(t)
	_, err := e.CompleteTrip("t-404", 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteTripIsTerminal(t *testing.T) {
	e := seededEngine(t)

	_, err := e.CompleteTrip("t-1", 125600)
	require.NoError(t, err)

	_, err = e.CompleteTrip("t-1", 125700)
	require.ErrorIs(t, err, ErrInvalidStatus)

	// t-2 was seeded already COMPLETED.
	_, err = e.CompleteTrip("t-2", 999999)
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCompleteTripRejectsOdometerRegression(t *testing.T) {
	e := seededEngine(t)
	before := e.Snapshot()

	_, err := e.CompleteTrip("t-1", 120000)
	require.ErrorIs(t, err, ErrOdometerRegression)
	assert.Contains(t, err.Error(), "120000")
	assert.Contains(t, err.Error(), "125000")
	assert.Equal(t, before, e.Snapshot())
}

func TestAddLogFuelKeepsVehicleStatus(t *testing.T) {
	e := seededEngine(t)

	snap, err := e.AddLog(LogInput{VehicleID: "v-1", LogType: "FUEL", Cost: 95.20, Liters: 52})
	require.NoError(t, err)
	assert.Equal(t, models.VehicleAvailable, findVehicle(t, snap, "v-1").Status)
}

func TestAddLogMaintenanceForcesInShop(t *testing.T) {
	e := seededEngine(t)

	snap, err := e.AddLog(LogInput{VehicleID: "v-1", LogType: "MAINTENANCE", Cost: 400, Description: "Brake pads"})
	require.NoError(t, err)
	assert.Equal(t, models.VehicleInShop, findVehicle(t, snap, "v-1").Status)
}

// The maintenance rule overrides every prior status, ON_TRIP included.
func TestAddLogMaintenancePullsOnTripVehicle(t *testing.T) {
	e := seededEngine(t)

	snap, err := e.AddLog(LogInput{VehicleID: "v-3", LogType: "MAINTENANCE", Cost: 1200, Description: "Transmission noise"})
	require.NoError(t, err)
	assert.Equal(t, models.VehicleInShop, findVehicle(t, snap, "v-3").Status)
}

func TestAddLogUnknownVehicle(t *testing.T) {
	e := seededEngine(t)
	_, err := e.AddLog(LogInput{VehicleID: "v-404", LogType: "FUEL", Cost: 10})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddLogMostRecentFirst(t *testing.T) {
	e := seededEngine(t)

	_, err := e.AddLog(LogInput{VehicleID: "v-1", LogType: "FUEL", Cost: 80, Liters: 40, Description: "first"})
	require.NoError(t, err)
	snap, err := e.AddLog(LogInput{VehicleID: "v-1", LogType: "FUEL", Cost: 90, Liters: 45, Description: "second"})
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(snap.Logs), 2)
	assert.Equal(t, "second", snap.Logs[0].Description)
	assert.Equal(t, "first", snap.Logs[1].Description)
}

func TestAddLogDefaultsDateLogged(t *testing.T) {
	e := seededEngine(t)

	snap, err := e.AddLog(LogInput{VehicleID: "v-1", LogType: "FUEL", Cost: 80, Liters: 40})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), snap.Logs[0].DateLogged, time.Minute)
}

func TestSeedSnapshot(t *testing.T) {
	e := New(nil)
	snap := e.Seed()

	assert.Len(t, snap.Vehicles, 3)
	assert.Len(t, snap.Drivers, 3)
	assert.Len(t, snap.Trips, 2)
	assert.Len(t, snap.Logs, 2)

	// Seeded references all resolve.
	for _, tr := range snap.Trips {
		findVehicle(t, snap, tr.VehicleID)
		findDriver(t, snap, tr.DriverID)
	}
	for _, l := range snap.Logs {
		findVehicle(t, snap, l.VehicleID)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	e := seededEngine(t)

	snap := e.Snapshot()
	snap.Vehicles[0].Status = models.VehicleRetired
	snap.Vehicles[0].OdometerKM = 0

	assert.Equal(t, models.VehicleAvailable, findVehicle(t, e.Snapshot(), "v-1").Status)
}

func TestIndependentEnginesDoNotShareState(t *testing.T) {
	a := New(nil)
	a.Seed()
	b := New(nil)

	assert.Len(t, a.Snapshot().Vehicles, 3)
	assert.Empty(t, b.Snapshot().Vehicles)
}
