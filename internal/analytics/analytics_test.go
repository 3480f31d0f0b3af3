package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/fleet-dispatch/internal/engine"
)

func seededSnapshot() engine.Snapshot {
	e := engine.New(nil)
	return e.Seed()
}

func TestDashboardOnSeed(t *testing.T) {
	k := Dashboard(seededSnapshot())

	// Seed: v-3 ON_TRIP, v-2 IN_SHOP, 3 vehicles, one DISPATCHED trip.
	assert.Equal(t, 1, k.ActiveFleet)
	assert.Equal(t, 1, k.InShop)
	assert.Equal(t, 3, k.TotalVehicles)
	assert.Equal(t, 33.0, k.UtilizationPct)
	assert.Equal(t, 1, k.PendingCargo)
}

func TestDashboardEmptyFleet(t *testing.T) {
	k := Dashboard(engine.Snapshot{})
	assert.Zero(t, k.UtilizationPct)
	assert.Zero(t, k.TotalVehicles)
}

func TestFinancialsOnSeed(t *testing.T) {
	f := Financials(seededSnapshot())

	// One fuel log (120.50, 65L), one maintenance log (850.00), and the
	// completed trip t-2 worth 300. Odometers sum to 250000km.
	assert.Equal(t, 120.50, f.FuelCost)
	assert.Equal(t, 850.00, f.MaintenanceCost)
	assert.Equal(t, 970.50, f.OperatingCost)
	assert.Equal(t, 300.0, f.TotalRevenue)
	assert.InDelta(t, 250000.0/65.0, f.FuelEfficiencyKMPerL, 0.01)
}

func TestFinancialsNoFuelLogged(t *testing.T) {
	f := Financials(engine.Snapshot{})
	assert.Zero(t, f.FuelEfficiencyKMPerL)
}

func TestROIByVehicleOnSeed(t *testing.T) {
	rois := ROIByVehicle(seededSnapshot())
	require.Len(t, rois, 3)

	byPlate := make(map[string]VehicleROI)
	for _, r := range rois {
		byPlate[r.LicensePlate] = r
	}

	// v-1 (ABC-1234): 300 revenue - 120.50 fuel, against 35000 acquisition.
	v1 := byPlate["ABC-1234"]
	assert.InDelta(t, 179.50, v1.NetProfit, 0.001)
	assert.InDelta(t, 179.50/35000*100, v1.ROIPct, 0.001)

	// v-2 (XYZ-9876): no revenue, 850 maintenance.
	v2 := byPlate["XYZ-9876"]
	assert.InDelta(t, -850.0, v2.NetProfit, 0.001)

	// v-3 (TRK-5555): open trip only, no completed revenue, no logs.
	v3 := byPlate["TRK-5555"]
	assert.Zero(t, v3.NetProfit)
	assert.Zero(t, v3.ROIPct)
}
